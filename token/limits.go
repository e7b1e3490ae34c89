package token

// Limits bound the sizes a document may reach while parsing. They are
// validation only, storage grows as needed up to these caps.
type Limits struct {
	MaxKeyLen    int
	MaxStringLen int
	MaxFileSize  int
	MaxLines     int
	MaxSubKeys   int
	MaxArrayLen  int
}

func DefaultLimits() Limits {
	return Limits{
		MaxKeyLen:    256,
		MaxStringLen: 4096,
		MaxFileSize:  1 << 30,
		MaxLines:     1 << 24,
		MaxSubKeys:   1 << 17,
		MaxArrayLen:  1 << 17,
	}
}
