package diagnosis

import "errors"

// ErrUnknownSymptom indicates a diagnosis request referenced a name that is
// not a symptom vertex in the graph. It is request-scoped and recoverable:
// the caller reports it and the engine state is unaffected.
var ErrUnknownSymptom = errors.New("unknown symptom")
