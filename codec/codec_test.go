package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Strategy   string    `json:"strategy"`
	NumBuckets int       `json:"num_buckets"`
	Boundaries []float64 `json:"boundaries"`
}

func TestCodec_RoundTrip(t *testing.T) {
	codecs := []Codec{JSON{}, GoJSON{}}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			in := payload{
				Strategy:   "mse",
				NumBuckets: 3,
				Boundaries: []float64{580.5, 670},
			}

			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out payload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestCodec_WireCompatible(t *testing.T) {
	// Bytes written by one JSON codec must decode with the other.
	in := payload{Strategy: "kmeans", NumBuckets: 2, Boundaries: []float64{45.25}}

	data, err := JSON{}.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, GoJSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestMustMarshal(t *testing.T) {
	data := MustMarshal(nil, payload{Strategy: "mse"})
	assert.NotEmpty(t, data)

	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
