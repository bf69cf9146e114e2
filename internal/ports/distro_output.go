package ports

import (
	"io"

	"lsb-release/internal/types"
)

type DistroInfoWriterPort interface {
	WriteDistroInfo(w io.Writer, view types.DistroView) error
}
