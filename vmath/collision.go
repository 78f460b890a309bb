package vmath

// AABBOverlap reports whether two axis-aligned boxes intersect
// Boxes are given by center and full size per axis; touching edges do not count
func AABBOverlap(posA, sizeA, posB, sizeB Vec3F) bool {
	return posA.X-sizeA.X/2 < posB.X+sizeB.X/2 &&
		posA.X+sizeA.X/2 > posB.X-sizeB.X/2 &&
		posA.Y-sizeA.Y/2 < posB.Y+sizeB.Y/2 &&
		posA.Y+sizeA.Y/2 > posB.Y-sizeB.Y/2 &&
		posA.Z-sizeA.Z/2 < posB.Z+sizeB.Z/2 &&
		posA.Z+sizeA.Z/2 > posB.Z-sizeB.Z/2
}

// WithinRadius reports whether b lies strictly inside a sphere of radius r around a
func WithinRadius(a, b Vec3F, r float64) bool {
	return V3FMagSq(V3FSub(a, b)) < r*r
}

// WithinPlanarRadius is WithinRadius on the XZ plane
func WithinPlanarRadius(a, b Vec3F, r float64) bool {
	dx, dz := a.X-b.X, a.Z-b.Z
	return dx*dx+dz*dz < r*r
}
