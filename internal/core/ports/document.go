package ports

import (
	"context"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

type TicketRenderer interface {
	RenderQR(ticket *domain.Ticket, size int) ([]byte, error)
	RenderPDF(ticket *domain.Ticket) ([]byte, error)
}

type ArtifactStore interface {
	Write(ctx context.Context, name string, content []byte) (string, error)
}
