package meshing

// Face identifies one of the six axis-aligned faces of a unit block.
type Face int

const (
	// FaceFront faces -Z
	FaceFront Face = iota
	// FaceBack faces +Z
	FaceBack
	// FaceTop faces +Y
	FaceTop
	// FaceBottom faces -Y
	FaceBottom
	// FaceLeft faces -X
	FaceLeft
	// FaceRight faces +X
	FaceRight
)

// AllFaces lists every face in emission order.
var AllFaces = [6]Face{FaceFront, FaceBack, FaceTop, FaceBottom, FaceLeft, FaceRight}

// Normal returns the outward unit offset of the face.
func (f Face) Normal() (dx, dy, dz int) {
	switch f {
	case FaceFront:
		return 0, 0, -1
	case FaceBack:
		return 0, 0, 1
	case FaceTop:
		return 0, 1, 0
	case FaceBottom:
		return 0, -1, 0
	case FaceLeft:
		return -1, 0, 0
	case FaceRight:
		return 1, 0, 0
	}
	return 0, 0, 0
}

func (f Face) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	}
	return "unknown"
}
