// Command dbordump prints the values packed into a DBOR-encoded file, one
// per line: its byte offset, its kind and, where decodable, its value, else
// its size.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dlu-ch/dbor-go/encoding/dbor"
)

var flagHex = flag.Bool("x", false, "print every value's raw bytes as hex instead of its decoded form")

func main() {
	flag.Parse()

	files := flag.Args()
	buffers, err := readInputs(files)
	if err != nil {
		log.Fatal(err)
	}

	for _, in := range buffers {
		dumpOne(in.name, in.buf)
	}
}

type input struct {
	name string
	buf  []byte
}

// readInputs reads each named file, or stdin if files is empty.
func readInputs(files []string) ([]input, error) {
	if len(files) == 0 {
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []input{{name: "<stdin>", buf: buf}}, nil
	}

	var out []input
	for _, path := range files {
		buf, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		out = append(out, input{name: path, buf: buf})
	}
	return out, nil
}

func dumpOne(name string, buf []byte) {
	seq := dbor.NewValueSequence(buf)
	offset := 0
	for {
		v, ok := seq.Next()
		if !ok {
			break
		}
		fmt.Printf("%s+%d: %s\n", name, offset, describe(v))
		offset += v.Size()
	}
}

func describe(v dbor.Value) string {
	if !v.IsComplete() {
		return fmt.Sprintf("%s size=%d (incomplete)", v.Kind(), v.Size())
	}

	if *flagHex {
		return fmt.Sprintf("%s size=%d %s", v.Kind(), v.Size(), hex.EncodeToString(v.Buffer()))
	}

	switch {
	case v.IsNone():
		return "None"
	case v.IsNumber() || v.IsNumberlike():
		return describeNumber(v)
	case v.IsString():
		return describeString(v)
	case v.IsContainer():
		return fmt.Sprintf("%s size=%d", v.Kind(), v.Size())
	default:
		return fmt.Sprintf("%s size=%d", v.Kind(), v.Size())
	}
}

func describeNumber(v dbor.Value) string {
	if i, code := v.Int64(); code == dbor.OK {
		return fmt.Sprintf("%s = %d", v.Kind(), i)
	}
	if f, code := v.Float64(); code == dbor.OK || code == dbor.ApproxImprecise {
		return fmt.Sprintf("%s = %g", v.Kind(), f)
	}
	if m, e, code := v.Decimal(); code == dbor.OK || code == dbor.ApproxImprecise {
		return fmt.Sprintf("%s = %de%d", v.Kind(), m, e)
	}
	return fmt.Sprintf("%s size=%d (unrepresentable)", v.Kind(), v.Size())
}

func describeString(v dbor.Value) string {
	if b, code := v.ByteString(); code == dbor.OK {
		return fmt.Sprintf("%s = %s", v.Kind(), hex.EncodeToString(b))
	}
	s, code := v.UTF8String(1 << 20)
	if code != dbor.OK && code != dbor.ApproxExtreme {
		return fmt.Sprintf("%s size=%d (ill-formed)", v.Kind(), v.Size())
	}
	return fmt.Sprintf("%s = %q", v.Kind(), s.Bytes())
}
