// Package formats provides parsers for SM64 decomp collision source files.
package formats

// Note: conditional-compilation resolution is implemented in preprocess.go
// Note: COL_VERTEX/COL_TRI collision grammar is implemented in collision.go
// Note: OBJECT placement scanning and resolution is implemented in placement.go
// Note: bit-exact normals and orientation classes are implemented in normal.go
