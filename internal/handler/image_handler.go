package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"boxpoint-api/internal/service"
	"boxpoint-api/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type ImageHandler struct {
	service service.ImageService
}

func NewImageHandler(s service.ImageService) *ImageHandler {
	return &ImageHandler{service: s}
}

// multipartFile adapts an uploaded form file to service.UploadedFile
type multipartFile struct {
	header *multipart.FileHeader
}

func (f multipartFile) Name() string { return f.header.Filename }

func (f multipartFile) ContentType() string { return f.header.Header.Get(fiber.HeaderContentType) }

func (f multipartFile) Bytes() ([]byte, error) {
	file, err := f.header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// UploadImages
// POST /images/upload (multipart: files[], productId)
func (h *ImageHandler) UploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}

	productID, err := strconv.ParseUint(c.FormValue("productId"), 10, 64)
	if err != nil || productID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid productId")
	}

	headers := form.File["files"]
	files := make([]service.UploadedFile, len(headers))
	for i, header := range headers {
		files[i] = multipartFile{header: header}
	}

	images, err := h.service.SaveImages(c.UserContext(), uint(productID), files)
	if err != nil {
		return err
	}
	return response.OK(c, "Images uploaded successfully!", images)
}

// DownloadImage returns the raw bytes instead of the envelope
// GET /images/image/download/:id
func (h *ImageHandler) DownloadImage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	image, err := h.service.GetImageByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, image.FileType)
	c.Set(fiber.HeaderContentDisposition, contentDisposition(image.FileName))
	return c.Status(fiber.StatusOK).Send(image.Image)
}

var unsafeFilenameChars = strings.NewReplacer(`"`, "", `\`, "", "\r", "", "\n", "")

// contentDisposition quotes the name as is and, for non-ASCII names, adds
// the RFC 5987 filename* form
func contentDisposition(name string) string {
	plain := unsafeFilenameChars.Replace(name)
	header := fmt.Sprintf(`attachment; filename="%s"`, plain)
	for i := 0; i < len(name); i++ {
		if name[i] >= utf8.RuneSelf {
			encoded := strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
			return header + "; filename*=UTF-8''" + encoded
		}
	}
	return header
}

// UpdateImage
// PUT /images/image/:id/update (multipart: file)
func (h *ImageHandler) UpdateImage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	header, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File is required")
	}

	if _, err := h.service.UpdateImage(c.UserContext(), multipartFile{header: header}, id); err != nil {
		return err
	}
	return response.OK(c, "Image updated successfully!", nil)
}

// DeleteImage
// DELETE /images/image/:id/delete
func (h *ImageHandler) DeleteImage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteImageByID(c.UserContext(), id); err != nil {
		return err
	}
	return response.OK(c, "Image successfully deleted!", nil)
}
