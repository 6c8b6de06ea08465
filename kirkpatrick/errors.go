package kirkpatrick

import "errors"

// ErrTooFewVertices is returned by Build when fewer than three points are
// supplied. The reference behavior for malformed input generally is
// undefined, but fewer-than-three is cheap to catch here and gives the
// caller a clear signal instead of an out-of-bounds access deep inside
// triangulate.BuildOuterPoints.
var ErrTooFewVertices = errors.New("kirkpatrick: polygon must have at least three vertices")
