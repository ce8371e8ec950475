package impl

import (
	"io"
	"log/slog"
	"time"

	"coastal/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func partneredBarraca(id string, name string) *entity.Barraca {
	return &entity.Barraca{
		ID:           entity.BarracaID(id),
		Name:         name,
		Location:     "Copacabana",
		Partnered:    true,
		IsOpen:       true,
		ManualStatus: entity.ManualStatusUndefined,
	}
}
