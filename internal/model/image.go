package model

// Image is an uploaded product picture stored inline as a blob
type Image struct {
	BaseModel
	FileName    string `gorm:"type:varchar(255)" json:"file_name"`
	FileType    string `gorm:"type:varchar(100)" json:"file_type"`
	Image       []byte `json:"-"` // Raw payload, served only by the download endpoint
	DownloadURL string `gorm:"type:varchar(255)" json:"download_url"`

	ProductID *uint    `gorm:"index" json:"product_id,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`
}

type ImageResponse struct {
	ID          uint   `json:"id"`
	FileName    string `json:"file_name"`
	DownloadURL string `json:"download_url"`
}

func (i *Image) ToResponse() ImageResponse {
	return ImageResponse{
		ID:          i.ID,
		FileName:    i.FileName,
		DownloadURL: i.DownloadURL,
	}
}
