package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"
)

// payloadField is a payload field of a variant as it appears in the
// generated struct.
type payloadField struct {
	Go     string // Go field name
	Source string // descriptor name, or position for tuple fields
	Index  int
}

// displayFormat translates a display format into a fmt format string and
// the field selectors on the receiver e that feed it.
//
//	{0}, {name}     %v of the field
//	{0:?}, {name:?} %#v of the field
//	{}              next positional field
//	{{, }}          literal braces
func displayFormat(format string, fields []*payloadField) (string, []jen.Code, error) {
	var (
		b    strings.Builder
		args []jen.Code
		next int
	)
	for i := 0; i < len(format); i++ {
		switch c := format[i]; c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				return "", nil, fmt.Errorf("unclosed placeholder at offset %d", i)
			}
			spec := format[i+1 : i+end]
			i += end
			ref, mod, _ := strings.Cut(spec, ":")
			ref = strings.TrimSpace(ref)
			var f *payloadField
			switch {
			case ref == "":
				if next >= len(fields) {
					return "", nil, fmt.Errorf("no field for positional placeholder %d", next)
				}
				f = fields[next]
				next++
			default:
				for _, cand := range fields {
					if cand.Source == ref {
						f = cand
						break
					}
				}
				if f == nil {
					return "", nil, fmt.Errorf("unknown field %q in placeholder", ref)
				}
			}
			switch mod {
			case "":
				b.WriteString("%v")
			case "?", "#?":
				b.WriteString("%#v")
			default:
				return "", nil, fmt.Errorf("unsupported format spec %q", mod)
			}
			args = append(args, jen.Id("e").Dot(f.Go))
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", nil, fmt.Errorf("unmatched } at offset %d", i)
		case '%':
			b.WriteString("%%")
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), args, nil
}

// displayCode returns the expression producing the display text.
func displayCode(format string, fields []*payloadField) (jen.Code, bool, error) {
	text, args, err := displayFormat(format, fields)
	if err != nil {
		return nil, false, err
	}
	if len(args) == 0 {
		// %% escapes are only needed by Sprintf.
		return jen.Lit(strings.ReplaceAll(text, "%%", "%")), false, nil
	}
	return jen.Qual("fmt", "Sprintf").Call(append([]jen.Code{jen.Lit(text)}, args...)...), true, nil
}

func payloadFields(names []string) []*payloadField {
	fields := make([]*payloadField, len(names))
	for i, n := range names {
		if n == "" {
			fields[i] = &payloadField{Go: tupleField(i), Source: strconv.Itoa(i), Index: i}
		} else {
			fields[i] = &payloadField{Go: exportName(n), Source: n, Index: i}
		}
	}
	return fields
}
