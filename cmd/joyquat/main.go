// Package main provides a command line tool for inspecting quaternion triplet
// frames.
//
// Usage:
//
//	joyquat decode [-raw] [-format csv|spew] < frames
//	joyquat encode [-raw] < samples.csv
//	joyquat roundtrip [-count 1000] [-seed 1] [-angle 0.01] [-smooth]
//
// Frames are read and written as one hex encoded frame per line unless -raw
// is given, in which case they are concatenated binary frames.
//
// Sample rows hold the first, mid and last quaternions as x,y,z,w followed by
// the timestamp start and count: 14 columns in total.
package main

import (
	"bufio"
	"encoding/csv"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/zeebo/errs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/stat"

	"github.com/calebcase/joyquat"
	"github.com/calebcase/oops"
)

// Error is the class of errors reported by the tool.
var Error = errs.Class("joyquat")

func usage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  joyquat decode [-raw] [-format csv|spew]")
	fmt.Fprintln(os.Stderr, "  joyquat encode [-raw]")
	fmt.Fprintln(os.Stderr, "  joyquat roundtrip [-count n] [-seed n] [-angle rad] [-smooth]")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "decode":
		err = decode(os.Args[2:], os.Stdin, os.Stdout, os.Stderr)
	case "encode":
		err = encode(os.Args[2:], os.Stdin, os.Stdout)
	case "roundtrip":
		err = roundtrip(os.Args[2:], os.Stdout)
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// decode writes every frame read from r to w. Hex lines that fail to decode
// are reported on errw and skipped.
func decode(args []string, r io.Reader, w, errw io.Writer) (err error) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	raw := fs.Bool("raw", false, "Read concatenated binary frames instead of hex lines")
	format := fs.String("format", "csv", "Output format: csv or spew")
	fs.Parse(args)

	var emit func(joyquat.Mode, joyquat.Frame) error

	switch *format {
	case "csv":
		cw := csv.NewWriter(w)
		defer func() {
			cw.Flush()
			if err == nil && cw.Error() != nil {
				err = oops.Trace(cw.Error())
			}
		}()

		emit = func(m joyquat.Mode, f joyquat.Frame) error {
			if err := cw.Write(frameRecord(m, f)); err != nil {
				return oops.Trace(err)
			}

			return nil
		}
	case "spew":
		emit = func(m joyquat.Mode, f joyquat.Frame) error {
			_, err := fmt.Fprintf(w, "%s %s", m, spew.Sdump(f))
			if err != nil {
				return oops.Trace(err)
			}

			return nil
		}
	default:
		return Error.New("unknown format %q", *format)
	}

	if *raw {
		dec := joyquat.NewDecoder(r)
		for dec.Next() {
			if err = emit(dec.Mode(), dec.Frame()); err != nil {
				return err
			}
		}

		return dec.Err()
	}

	var failed int

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.Join(strings.Fields(scanner.Text()), "")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		var f joyquat.Frame

		data, err := hex.DecodeString(text)
		if err == nil {
			err = f.UnmarshalBinary(data)
		}
		if err != nil {
			fmt.Fprintf(errw, "Error: line %d: %v\n", line, err)
			failed++

			continue
		}

		var frame [joyquat.Size]byte
		copy(frame[:], data)

		if err = emit(joyquat.PeekMode(frame), f); err != nil {
			return err
		}
	}

	if err = scanner.Err(); err != nil {
		return oops.Trace(err)
	}

	if failed > 0 {
		return Error.New("%d lines failed to decode", failed)
	}

	return nil
}

func frameRecord(m joyquat.Mode, f joyquat.Frame) []string {
	record := []string{
		m.String(),
		strconv.Itoa(int(f.Timestamp.Start())),
		strconv.Itoa(int(f.Timestamp.Count())),
	}

	for _, q := range f.Samples {
		for _, c := range q {
			record = append(record, strconv.FormatFloat(c.Float(), 'f', -1, 64))
		}
	}

	return record
}

func encode(args []string, r io.Reader, w io.Writer) (err error) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	raw := fs.Bool("raw", false, "Write concatenated binary frames instead of hex lines")
	fs.Parse(args)

	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 14
	cr.TrimLeadingSpace = true

	enc := joyquat.NewEncoder(w)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return oops.Trace(err)
		}

		f, err := parseRecord(record)
		if err != nil {
			line, _ := cr.FieldPos(0)

			return Error.New("line %d: %v", line, err)
		}

		if *raw {
			if err = enc.Encode(&f); err != nil {
				return err
			}

			continue
		}

		data, err := f.MarshalBinary()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		if err != nil {
			return oops.Trace(err)
		}
	}
}

func parseRecord(record []string) (f joyquat.Frame, err error) {
	var vs [12]float64
	for i := range vs {
		vs[i], err = strconv.ParseFloat(record[i], 64)
		if err != nil {
			return f, err
		}
	}

	for i := range f.Samples {
		q := quat.Number{
			Imag: vs[4*i+0],
			Jmag: vs[4*i+1],
			Kmag: vs[4*i+2],
			Real: vs[4*i+3],
		}

		if quat.IsNaN(q) || quat.IsInf(q) {
			return f, Error.New("sample %d is not finite", i)
		}

		norm := quat.Abs(q)
		if norm == 0 {
			return f, Error.New("sample %d is zero", i)
		}

		f.Samples[i] = joyquat.FromNumber(quat.Scale(1/norm, q))
	}

	start, err := strconv.ParseUint(record[12], 10, 16)
	if err != nil {
		return f, err
	}

	count, err := strconv.ParseUint(record[13], 10, 8)
	if err != nil {
		return f, err
	}

	f.Timestamp = joyquat.NewTimestamp(uint16(start), uint8(count))

	return f, nil
}

func roundtrip(args []string, w io.Writer) (err error) {
	fs := flag.NewFlagSet("roundtrip", flag.ExitOnError)
	count := fs.Int("count", 1000, "Number of triplets to compress")
	seed := fs.Int64("seed", 1, "Random seed")
	angle := fs.Float64("angle", 0.01, "Rotation between samples in radians")
	smooth := fs.Bool("smooth", true, "Rotate at a constant rate across the triplet")
	fs.Parse(args)

	rng := rand.New(rand.NewSource(*seed))

	dists := map[joyquat.Mode][]float64{}

	for n := 0; n < *count; n++ {
		samples := randomTriplet(rng, *angle, *smooth)

		frame := joyquat.Compress(samples, joyquat.NewTimestamp(uint16(n), uint8(n)))
		mode := joyquat.PeekMode(frame)

		got, _, err := joyquat.Parse(frame)
		if err != nil {
			return err
		}

		for i := range samples {
			dists[mode] = append(dists[mode], distance(samples[i], got[i]))
		}
	}

	for m := joyquat.ModeIndividual; m < joyquat.ModeUnknown; m++ {
		es := dists[m]
		if len(es) == 0 {
			fmt.Fprintf(w, "%-28s %6d\n", m, 0)

			continue
		}

		fmt.Fprintf(w, "%-28s %6d mean %.3g max %.3g\n",
			m, len(es)/3, stat.Mean(es, nil), floats.Max(es))
	}

	return nil
}

func randomUnit(rng *rand.Rand) quat.Number {
	q := quat.Number{
		Real: rng.NormFloat64(),
		Imag: rng.NormFloat64(),
		Jmag: rng.NormFloat64(),
		Kmag: rng.NormFloat64(),
	}

	return quat.Scale(1/quat.Abs(q), q)
}

func randomTriplet(rng *rand.Rand, angle float64, smooth bool) [3]joyquat.Quaternion {
	q := randomUnit(rng)

	axis := randomUnit(rng)
	axis.Real = 0
	axis = quat.Scale(math.Sin(angle/2)/quat.Abs(axis), axis)
	axis.Real = math.Cos(angle / 2)

	if smooth {
		return [3]joyquat.Quaternion{
			joyquat.FromNumber(quat.Mul(quat.Conj(axis), q)),
			joyquat.FromNumber(q),
			joyquat.FromNumber(quat.Mul(axis, q)),
		}
	}

	return [3]joyquat.Quaternion{
		joyquat.FromNumber(quat.Mul(axis, q)),
		joyquat.FromNumber(q),
		joyquat.FromNumber(quat.Mul(q, axis)),
	}
}

// distance is the largest component error with q and -q treated as equal.
func distance(a, b joyquat.Quaternion) float64 {
	an, bn := a.Number(), b.Number()

	same := quat.Sub(an, bn)
	flipped := quat.Add(an, bn)

	return math.Min(maxComponent(same), maxComponent(flipped))
}

func maxComponent(q quat.Number) float64 {
	return floats.Max([]float64{
		math.Abs(q.Real), math.Abs(q.Imag), math.Abs(q.Jmag), math.Abs(q.Kmag),
	})
}
