package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/dto"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/flash"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/media"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/models"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/pkg/validation"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/services"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/session"
	"github.com/gofiber/fiber/v2"
)

const MsgListingCreated = "Post created successfully!"

type ListingHandler struct {
	listingService *services.ListingService
	store          *media.Store
}

func NewListingHandler(listingService *services.ListingService, store *media.Store) *ListingHandler {
	return &ListingHandler{listingService: listingService, store: store}
}

// Index is the public feed.
func (h *ListingHandler) Index(c *fiber.Ctx) error {
	listings, err := h.listingService.Feed(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, "index", fiber.Map{"Listings": listings})
}

func (h *ListingHandler) ShowPostFlat(c *fiber.Ctx) error {
	return render(c, "post_flat", fiber.Map{
		"Title":     "Post a listing",
		"FlatTypes": models.FlatTypes,
		"PostTypes": models.PostTypes,
	})
}

func (h *ListingHandler) PostFlat(c *fiber.Ctx) error {
	var form dto.ListingForm
	if err := validation.ParseForm(c, &form); err != nil {
		return err
	}

	flatType, err := models.ParseFlatType(form.FlatType)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	postType, err := models.ParsePostType(form.PostType)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	rent, err := strconv.Atoi(strings.TrimSpace(form.Rent))
	if err != nil {
		return fmt.Errorf("invalid rent %q: %w", form.Rent, err)
	}

	user := session.CurrentUser(c)
	listing := models.Listing{
		Title:        form.Title,
		FlatType:     flatType,
		Location:     form.Location,
		Rent:         rent,
		Description:  form.Description,
		ContactName:  form.ContactName,
		ContactPhone: form.ContactPhone,
		ContactEmail: form.ContactEmail,
		PostType:     postType,
		UserID:       user.ID,
	}

	// Files land on disk before the row is inserted; a failed insert leaves them behind.
	if listing.ImagePath, err = h.saveUpload(c, "image", media.KindImage); err != nil {
		return err
	}
	if listing.VideoPath, err = h.saveUpload(c, "video", media.KindVideo); err != nil {
		return err
	}

	if err := h.listingService.Create(c.UserContext(), &listing); err != nil {
		return err
	}

	flash.Add(c, MsgListingCreated)
	return c.Redirect("/")
}

// saveUpload stores the named file field if one was submitted.
func (h *ListingHandler) saveUpload(c *fiber.Ctx, field string, kind media.Kind) (*string, error) {
	fh := formFile(c, field)
	if fh == nil {
		return nil, nil
	}
	rel, err := h.store.Save(kind, fh)
	if err != nil {
		if errors.Is(err, media.ErrEmptyFilename) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Unusable "+field+" filename")
		}
		return nil, err
	}
	return &rel, nil
}

func formFile(c *fiber.Ctx, field string) *multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	files := form.File[field]
	if len(files) == 0 || files[0].Filename == "" {
		return nil
	}
	return files[0]
}

// Admin lists every listing, hidden ones included.
func (h *ListingHandler) Admin(c *fiber.Ctx) error {
	listings, err := h.listingService.All(c.UserContext())
	if err != nil {
		return err
	}
	return render(c, "admin", fiber.Map{"Title": "Admin", "Listings": listings})
}

func (h *ListingHandler) Search(c *fiber.Ctx) error {
	var q dto.SearchQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid search parameters")
	}

	filter, err := services.NewSearchFilter(&q)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	listings, err := h.listingService.Search(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return render(c, "search", fiber.Map{
		"Title":     "Search",
		"Listings":  listings,
		"Query":     q.Q,
		"FlatType":  q.Type,
		"PostType":  q.PostType,
		"FlatTypes": models.FlatTypes,
		"PostTypes": models.PostTypes,
	})
}
