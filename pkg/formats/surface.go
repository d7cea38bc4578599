package formats

// SurfaceType is the symbolic surface token attached to a triangle by the
// most recent COL_TRI_INIT marker. Tokens outside the known set are carried
// through verbatim; the constant list below only covers the types the
// inspector treats specially.
type SurfaceType string

// Known surface types.
const (
	SurfaceDefault      SurfaceType = "SURFACE_DEFAULT"
	SurfaceBurning      SurfaceType = "SURFACE_BURNING"
	SurfaceHangable     SurfaceType = "SURFACE_HANGABLE"
	SurfaceVerySlippery SurfaceType = "SURFACE_VERY_SLIPPERY"
	SurfaceNotSlippery  SurfaceType = "SURFACE_NOT_SLIPPERY"
)

// IsDefault returns true for the sentinel applied before any marker is seen.
func (s SurfaceType) IsDefault() bool {
	return s == SurfaceDefault
}

// IsHazard returns true if the surface damages the player on contact.
func (s SurfaceType) IsHazard() bool {
	return s == SurfaceBurning
}

// AffectsTraction returns true if the surface overrides default friction.
func (s SurfaceType) AffectsTraction() bool {
	return s == SurfaceVerySlippery || s == SurfaceNotSlippery
}
