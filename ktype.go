package thermocouple

// K-type table axis.
const (
	KTypeMinCelsius = -270
	KTypeMaxCelsius = 1372
	KTypeStep       = 1
)

// KType is the type K reference table in millivolts. Index i holds the EMF at
// KTypeMinCelsius+i °C.
var KType = MustTable(kTypeEMF[:], KTypeMinCelsius, KTypeStep)
