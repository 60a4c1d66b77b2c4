package server

import (
	"github.com/mailru/easyjson/jlexer"
)

// unmarshalCoords parses a JSON list of [lon, lat] pairs into result,
// reusing its backing array.
func unmarshalCoords(data []byte, result *[][2]float64) error {
	in := jlexer.Lexer{Data: data}

	*result = (*result)[:0]
	if in.IsNull() {
		in.Skip()
		in.Consumed()
		return in.Error()
	}

	in.Delim('[')
	for !in.IsDelim(']') {
		var point [2]float64
		in.Delim('[')
		point[0] = in.Float64()
		in.WantComma()
		point[1] = in.Float64()
		in.WantComma()
		in.Delim(']')
		in.WantComma()

		if in.Error() != nil {
			return in.Error()
		}
		*result = append(*result, point)
	}
	in.Delim(']')
	in.Consumed()

	return in.Error()
}
