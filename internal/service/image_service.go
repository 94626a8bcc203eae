package service

import (
	"context"
	"fmt"

	"boxpoint-api/internal/apperror"
	"boxpoint-api/internal/cache"
	"boxpoint-api/internal/model"
	"boxpoint-api/internal/repository"
	"boxpoint-api/internal/ws"

	"github.com/gabriel-vasile/mimetype"
	"gorm.io/gorm"
)

// UploadedFile is one file of a multipart upload
type UploadedFile interface {
	Name() string
	ContentType() string
	Bytes() ([]byte, error)
}

type ImageService interface {
	GetImageByID(ctx context.Context, id uint) (*model.Image, error)
	DeleteImageByID(ctx context.Context, id uint) error
	UpdateImage(ctx context.Context, file UploadedFile, id uint) (*model.Image, error)
	SaveImages(ctx context.Context, productID uint, files []UploadedFile) ([]model.ImageResponse, error)
}

type imageService struct {
	imageRepo      repository.ImageRepository
	productService ProductService
	db             *gorm.DB
	cache          cache.ProductCache
	events         ws.Publisher
	downloadPath   string
}

// NewImageService builds download URLs as downloadPath followed by the
// image ID, e.g. "/api/v1/images/image/download/" + "12".
func NewImageService(iRepo repository.ImageRepository, productService ProductService, db *gorm.DB, productCache cache.ProductCache, events ws.Publisher, downloadPath string) ImageService {
	if productCache == nil {
		productCache = cache.NewNoopProductCache()
	}
	return &imageService{
		imageRepo:      iRepo,
		productService: productService,
		db:             db,
		cache:          productCache,
		events:         events,
		downloadPath:   downloadPath,
	}
}

func (s *imageService) downloadURL(id uint) string {
	return fmt.Sprintf("%s%d", s.downloadPath, id)
}

// fileType trusts the declared MIME type unless it is missing or generic
func fileType(declared string, data []byte) string {
	if declared == "" || declared == "application/octet-stream" {
		return mimetype.Detect(data).String()
	}
	return declared
}

func (s *imageService) GetImageByID(ctx context.Context, id uint) (*model.Image, error) {
	image, found, err := s.imageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find image %d: %w", id, err)
	}
	if !found {
		return nil, apperror.NotFound("Image not found!")
	}
	return image, nil
}

func (s *imageService) DeleteImageByID(ctx context.Context, id uint) error {
	image, err := s.GetImageByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.imageRepo.Delete(ctx, image.ID); err != nil {
		return fmt.Errorf("delete image %d: %w", id, err)
	}

	s.invalidateProduct(ctx, image)
	publish(s.events, "image_deleted", image.ID, fmt.Sprintf("Image '%s' deleted", image.FileName))
	return nil
}

func (s *imageService) UpdateImage(ctx context.Context, file UploadedFile, id uint) (*model.Image, error) {
	image, err := s.GetImageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := file.Bytes()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file.Name(), err)
	}

	image.FileName = file.Name()
	image.FileType = fileType(file.ContentType(), data)
	image.Image = data
	if err := s.imageRepo.Update(ctx, image); err != nil {
		return nil, fmt.Errorf("update image %d: %w", id, err)
	}

	s.invalidateProduct(ctx, image)
	publish(s.events, "image_updated", image.ID, fmt.Sprintf("Image '%s' updated", image.FileName))
	return image, nil
}

// SaveImages stores every file for the product. Each row is inserted
// first and then saved again once its ID, and so its download URL, is
// known. A file that cannot be read fails the whole batch.
func (s *imageService) SaveImages(ctx context.Context, productID uint, files []UploadedFile) ([]model.ImageResponse, error) {
	product, err := s.productService.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, apperror.Invalid("At least one file is required")
	}

	saved := make([]model.ImageResponse, 0, len(files))
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		images := s.imageRepo.WithTx(tx)

		for _, file := range files {
			data, err := file.Bytes()
			if err != nil {
				return fmt.Errorf("read %s: %w", file.Name(), err)
			}

			image := &model.Image{
				FileName:  file.Name(),
				FileType:  fileType(file.ContentType(), data),
				Image:     data,
				ProductID: &product.ID,
			}
			image.DownloadURL = s.downloadURL(image.ID)

			if err := images.Create(ctx, image); err != nil {
				return fmt.Errorf("save image %s: %w", file.Name(), err)
			}

			image.DownloadURL = s.downloadURL(image.ID)
			if err := images.Update(ctx, image); err != nil {
				return fmt.Errorf("set download url of image %d: %w", image.ID, err)
			}

			saved = append(saved, image.ToResponse())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, product.ID)
	publish(s.events, "images_uploaded", product.ID, fmt.Sprintf("%d image(s) uploaded for '%s'", len(saved), product.Name))
	return saved, nil
}

func (s *imageService) invalidateProduct(ctx context.Context, image *model.Image) {
	if image.ProductID != nil {
		s.cache.Invalidate(ctx, *image.ProductID)
	}
}
