package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"path"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/burger-daydle/daydle_api/dto"
	"github.com/burger-daydle/daydle_api/model"
	"github.com/burger-daydle/daydle_api/shared"
)

// MediaService handles episode still uploads from the admin dashboard
type MediaService struct {
	context.DefaultService

	sqlSvc   *SqliteService
	minioSvc *MinIOService
}

const MEDIA_SVC = "media_svc"

const maxStillSize = 5 << 20 // 5MB

var stillExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

func (svc MediaService) Id() string {
	return MEDIA_SVC
}

func (svc *MediaService) Configure(ctx *context.Context) error {
	svc.sqlSvc = ctx.Service(SQLITE_SVC).(*SqliteService)
	svc.minioSvc = ctx.Service(MINIO_SVC).(*MinIOService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *MediaService) Start() error {
	return nil
}

// UploadEpisodeStill stores an image and points the episode's still at it
func (svc *MediaService) UploadEpisodeStill(episodeID string, file *multipart.FileHeader, uploadedBy string) (*dto.MediaUploadResponse, error) {
	if file.Size > maxStillSize {
		return nil, shared.NewBadRequestError(fmt.Errorf("file too large"), "Image must be 5MB or smaller")
	}

	contentType := file.Header.Get("Content-Type")
	ext, ok := stillExtensions[contentType]
	if !ok {
		return nil, shared.NewBadRequestError(fmt.Errorf("unsupported content type %s", contentType), "Image must be JPEG, PNG, WebP or GIF")
	}

	if _, err := svc.sqlSvc.GetEpisode(episodeID); err != nil {
		return nil, err
	}

	objectName := path.Join("stills", randomHex(16)+ext)

	src, err := file.Open()
	if err != nil {
		return nil, shared.NewInternalError(err)
	}
	defer src.Close()

	if _, err := svc.minioSvc.UploadFile(objectName, src, file.Size, contentType); err != nil {
		return nil, shared.NewInternalError(err)
	}

	url := svc.minioSvc.PublicURL(objectName)

	err = svc.sqlSvc.CreateMediaAsset(&model.MediaAsset{
		ObjectName:  objectName,
		URL:         url,
		ContentType: contentType,
		Size:        file.Size,
		UploadedBy:  uploadedBy,
	})
	if err != nil {
		return nil, err
	}

	err = svc.sqlSvc.UpdateEpisodeColumns(episodeID, map[string]interface{}{"still_url": url})
	if err != nil {
		return nil, err
	}

	log.Printf("Uploaded still %s for episode %s", objectName, episodeID)

	return &dto.MediaUploadResponse{
		URL:  url,
		Path: objectName,
		Size: file.Size,
	}, nil
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
