package form2

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/soypat/arch"
	"github.com/soypat/arch/form2/must2"
)

// PointedArch returns the SDF2 of the region enclosed by a pointed arch
// and its base line. The returned error wraps arch.ErrInvalidWidth for a
// non-positive width.
func PointedArch(width, pointiness float64, vertices int) (arch.SDF2, error) {
	return FromParameters(arch.Parameters{
		Width:      width,
		Pointiness: pointiness,
		Vertices:   vertices,
	})
}

// FromParameters is the structured request form of PointedArch.
func FromParameters(p arch.Parameters) (s arch.SDF2, err error) {
	log := Logger()
	if c := p.Clamped(); c != p && log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("pointed arch parameters clamped",
			slog.Float64("pointiness", p.Pointiness), slog.Float64("clamped_pointiness", c.Pointiness),
			slog.Int("vertices", p.Vertices), slog.Int("clamped_vertices", c.Vertices),
		)
	}
	defer func() {
		if a := recover(); a != nil {
			err = &shapeErr{
				panicObj: a,
				stack:    string(debug.Stack()),
			}
			log.Warn("pointed arch construction failed", slog.Any("err", err))
		}
	}()
	return must2.ArchRegion(must2.MustProfile(p)), err
}
