package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	photoMaxUploadSize = 5 * 1024 * 1024
	photoMaxWidth      = 800
	photoWebPQuality   = 80
)

// ConvertToWebP décode une photo (jpeg/png), la réduit à 800px max de large
// et l'encode en webp lossy.
func ConvertToWebP(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image illisible: %w", err)
	}

	if img.Bounds().Dx() > photoMaxWidth {
		img = imaging.Resize(img, photoMaxWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: photoWebPQuality}); err != nil {
		return nil, fmt.Errorf("encodage webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveMemberPhoto convertit l'upload en webp et l'écrit sous uploadDir.
// Renvoie l'URL publique relative du fichier.
func SaveMemberPhoto(uploadDir string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > photoMaxUploadSize {
		return "", fmt.Errorf("photo trop volumineuse (max %d Ko)", photoMaxUploadSize/1024)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("ouverture du fichier: %w", err)
	}
	defer src.Close()

	data, err := ConvertToWebP(src)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("dossier upload: %w", err)
	}

	name := uuid.NewString() + ".webp"
	if err := os.WriteFile(filepath.Join(uploadDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("écriture du fichier: %w", err)
	}

	return "/uploads/" + name, nil
}
