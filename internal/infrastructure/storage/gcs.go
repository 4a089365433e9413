// Package storage implementa el puerto ObjectStorage sobre Google Cloud
// Storage. Los objetos quedan bajo un prefijo configurable del bucket y la
// URL pública devuelta es la que se persiste en la tabla de documentos.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"

	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/internal/application/procurement"
	"github.com/JACKMUNGAI001/Vendor-Sync-Backend/pkg/config"
)

var _ procurement.ObjectStorage = (*GCSStorage)(nil)

// ErrDisabled indica que no hay bucket configurado (GCS_BUCKET vacío).
var ErrDisabled = errors.New("object storage deshabilitado: falta GCS_BUCKET")

// GCSStorage adaptador de Google Cloud Storage.
type GCSStorage struct {
	client *gcs.Client
	bucket string
	prefix string
}

// New crea el adaptador. Las credenciales salen del entorno
// (GOOGLE_APPLICATION_CREDENTIALS o metadata del runtime).
func New(ctx context.Context, cfg config.StorageConfig) (*GCSStorage, error) {
	if cfg.Bucket == "" {
		return nil, ErrDisabled
	}
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("crear cliente GCS: %w", err)
	}
	return &GCSStorage{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Upload sube el stream y devuelve la URL pública y el nombre del objeto.
func (s *GCSStorage) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, string, error) {
	name := objectName
	if s.prefix != "" {
		name = strings.TrimSuffix(s.prefix, "/") + "/" + objectName
	}

	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", "", fmt.Errorf("escribir objeto: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", "", fmt.Errorf("cerrar objeto: %w", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, name)
	return url, name, nil
}

// Close libera el cliente.
func (s *GCSStorage) Close() error {
	return s.client.Close()
}

var _ procurement.ObjectStorage = Disabled{}

// Disabled es el ObjectStorage usado cuando no hay bucket configurado:
// todo upload falla con ErrDisabled y el caso de uso responde UPSTREAM.
type Disabled struct{}

// Upload siempre falla.
func (Disabled) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, string, error) {
	return "", "", ErrDisabled
}
