package util

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
)

func IsNil(itf interface{}) bool {
	return itf == nil || (reflect.ValueOf(itf).Kind() == reflect.Ptr && reflect.ValueOf(itf).IsNil())
}

// Bytes returns a fixed-width little endian encoding of an integer value, or
// the raw bytes of a string, for hashing.
func Bytes(v interface{}) []byte {
	buf := make([]byte, 8)
	switch x := v.(type) {
	case string:
		return []byte(x)
	case []byte:
		return x
	case int:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case int8:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case int16:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case int32:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case int64:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case uint:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case uint8:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case uint16:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case uint32:
		binary.LittleEndian.PutUint64(buf, uint64(x))
	case uint64:
		binary.LittleEndian.PutUint64(buf, x)
	default:
		panic(fmt.Errorf("unsupported v type %T", v))
	}

	return buf
}

// Atoi parses s the way C's atoi does: leading white space is skipped, an
// optional sign is read, then digits up to the first non-digit. It never
// fails; ok is false when no digit was found, in which case n is 0. Values
// out of range saturate at math.MaxInt64 / math.MinInt64.
func Atoi(s string) (n int, ok bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var acc uint64
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}

	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		ok = true
		d := uint64(s[i] - '0')
		if acc > (limit-d)/10 {
			acc = limit
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			break
		}
		acc = acc*10 + d
	}

	if neg {
		return int(-int64(acc - 1) - 1), ok
	}

	return int(acc), ok
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}
