package render

import (
	"math"

	"landscape/internal/voxel"
)

// Face identifies which voxel face a ray entered through, the coarse
// surface-orientation estimate used by shading.
type Face uint8

const (
	// FaceNone means the ray origin was already inside the voxel.
	FaceNone Face = iota
	FaceTop
	FaceBottom
	FaceWest  // entered moving +X
	FaceEast  // entered moving -X
	FaceNorth // entered moving +Z
	FaceSouth // entered moving -Z
)

// Hit is the outcome of marching one ray: the first solid voxel, or no
// hit within the distance budget.
type Hit struct {
	Hit      bool
	Voxel    voxel.Voxel
	X, Y, Z  int
	Distance float64
	Face     Face
}

// March walks a ray through the voxel grid and returns the first solid
// voxel within maxDist. The walk visits every cell the ray passes
// through exactly once, so no voxel can be skipped regardless of angle.
// A ray starting inside a solid voxel hits immediately at distance
// zero. Rays that leave the world, or never enter it, miss.
func March(w *voxel.World, r Ray, maxDist float64) Hit {
	dir := r.Dir.Normalize()

	gridX := int(math.Floor(r.Origin.X()))
	gridY := int(math.Floor(r.Origin.Y()))
	gridZ := int(math.Floor(r.Origin.Z()))

	if v := w.At(gridX, gridY, gridZ); v.Solid {
		return Hit{Hit: true, Voxel: v, X: gridX, Y: gridY, Z: gridZ, Distance: 0, Face: FaceNone}
	}

	// Axis-aligned distances between successive grid-plane crossings.
	// Zero direction components yield +Inf and their axis never steps.
	deltaX := math.Abs(1 / dir.X())
	deltaY := math.Abs(1 / dir.Y())
	deltaZ := math.Abs(1 / dir.Z())

	var stepX, stepY, stepZ int
	var sideDistX, sideDistY, sideDistZ float64

	switch {
	case dir.X() > 0:
		stepX = 1
		sideDistX = (float64(gridX) + 1 - r.Origin.X()) * deltaX
	case dir.X() < 0:
		stepX = -1
		sideDistX = (r.Origin.X() - float64(gridX)) * deltaX
	default:
		sideDistX = math.Inf(1)
	}
	switch {
	case dir.Y() > 0:
		stepY = 1
		sideDistY = (float64(gridY) + 1 - r.Origin.Y()) * deltaY
	case dir.Y() < 0:
		stepY = -1
		sideDistY = (r.Origin.Y() - float64(gridY)) * deltaY
	default:
		sideDistY = math.Inf(1)
	}
	switch {
	case dir.Z() > 0:
		stepZ = 1
		sideDistZ = (float64(gridZ) + 1 - r.Origin.Z()) * deltaZ
	case dir.Z() < 0:
		stepZ = -1
		sideDistZ = (r.Origin.Z() - float64(gridZ)) * deltaZ
	default:
		sideDistZ = math.Inf(1)
	}

	var dist float64
	var face Face
	for dist < maxDist {
		if sideDistX < sideDistY && sideDistX < sideDistZ {
			dist = sideDistX
			sideDistX += deltaX
			gridX += stepX
			if stepX > 0 {
				face = FaceWest
			} else {
				face = FaceEast
			}
		} else if sideDistY < sideDistZ {
			dist = sideDistY
			sideDistY += deltaY
			gridY += stepY
			if stepY > 0 {
				face = FaceBottom
			} else {
				face = FaceTop
			}
		} else {
			dist = sideDistZ
			sideDistZ += deltaZ
			gridZ += stepZ
			if stepZ > 0 {
				face = FaceNorth
			} else {
				face = FaceSouth
			}
		}
		if dist > maxDist {
			break
		}
		if v := w.At(gridX, gridY, gridZ); v.Solid {
			return Hit{Hit: true, Voxel: v, X: gridX, Y: gridY, Z: gridZ, Distance: dist, Face: face}
		}
	}

	return Hit{}
}
