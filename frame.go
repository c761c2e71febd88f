package joyquat

// Frame is a decoded triplet of samples and its timestamp.
type Frame struct {
	Samples   [3]Quaternion
	Timestamp Timestamp
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f Frame) MarshalBinary() (data []byte, err error) {
	frame := Compress(f.Samples, f.Timestamp)

	return frame[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (f *Frame) UnmarshalBinary(data []byte) (err error) {
	if len(data) != Size {
		return ErrFrameSize
	}

	var frame [Size]byte
	copy(frame[:], data)

	samples, ts, err := Parse(frame)
	if err != nil {
		return err
	}

	f.Samples = samples
	f.Timestamp = ts

	return nil
}
