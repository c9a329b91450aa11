package poster_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/poster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validRecordJSON = `{"name":"A","tag":"t","shortDescription":"s","price":"p","summary":"m","features":[],"imageUrls":[]}`

func TestParseRecord(t *testing.T) {
	t.Parallel()

	t.Run("parses fenced json block", func(t *testing.T) {
		t.Parallel()

		raw := "```json\n" + validRecordJSON + "\n```"

		rec, err := poster.ParseRecord(raw)

		require.NoError(t, err)
		assert.Equal(t, &poster.Record{
			Name:             "A",
			Tag:              "t",
			ShortDescription: "s",
			Price:            "p",
			Summary:          "m",
			Features:         []string{},
			ImageURLs:        []string{},
		}, rec)
	})

	t.Run("parses fenced block surrounded by prose", func(t *testing.T) {
		t.Parallel()

		raw := "Here is the data you asked for:\n```json\n" +
			`{"name":"Ship · 飞船","tag":"Paid","shortDescription":"s","price":"$5","summary":"m","features":["fast","small"],"imageUrls":["https://x.test/a.png"]}` +
			"\n```\nLet me know if you need more."

		rec, err := poster.ParseRecord(raw)

		require.NoError(t, err)
		assert.Equal(t, "Ship · 飞船", rec.Name)
		assert.Equal(t, "$5", rec.Price)
		assert.Equal(t, []string{"fast", "small"}, rec.Features)
		assert.Equal(t, []string{"https://x.test/a.png"}, rec.ImageURLs)
	})

	t.Run("parses bare json", func(t *testing.T) {
		t.Parallel()

		rec, err := poster.ParseRecord(validRecordJSON)

		require.NoError(t, err)
		assert.Equal(t, "A", rec.Name)
		assert.NotNil(t, rec.Features)
		assert.NotNil(t, rec.ImageURLs)
	})

	t.Run("empty arrays marshal as arrays", func(t *testing.T) {
		t.Parallel()

		rec, err := poster.ParseRecord(validRecordJSON)
		require.NoError(t, err)

		out, err := json.Marshal(rec)

		require.NoError(t, err)
		assert.JSONEq(t, validRecordJSON, string(out))
	})

	t.Run("features as string is a schema violation", func(t *testing.T) {
		t.Parallel()

		raw := "```json\n" +
			`{"name":"A","tag":"t","shortDescription":"s","price":"p","summary":"m","features":"fast","imageUrls":[]}` +
			"\n```"

		_, err := poster.ParseRecord(raw)

		require.Error(t, err)
		assert.Equal(t, poster.ESCHEMA, poster.ErrorCode(err))
		assert.Contains(t, poster.ErrorMessage(err), "features")
	})

	t.Run("missing field is a schema violation naming the field", func(t *testing.T) {
		t.Parallel()

		raw := `{"name":"A","tag":"t","shortDescription":"s","summary":"m","features":[],"imageUrls":[]}`

		_, err := poster.ParseRecord(raw)

		require.Error(t, err)
		assert.Equal(t, poster.ESCHEMA, poster.ErrorCode(err))
		assert.Contains(t, poster.ErrorMessage(err), "price")
	})

	t.Run("null field is a schema violation", func(t *testing.T) {
		t.Parallel()

		raw := `{"name":null,"tag":"t","shortDescription":"s","price":"p","summary":"m","features":[],"imageUrls":[]}`

		_, err := poster.ParseRecord(raw)

		require.Error(t, err)
		assert.Equal(t, poster.ESCHEMA, poster.ErrorCode(err))
		assert.Contains(t, poster.ErrorMessage(err), "name")
	})

	t.Run("number where string expected is a schema violation", func(t *testing.T) {
		t.Parallel()

		raw := `{"name":"A","tag":"t","shortDescription":"s","price":12.5,"summary":"m","features":[],"imageUrls":[]}`

		_, err := poster.ParseRecord(raw)

		require.Error(t, err)
		assert.Equal(t, poster.ESCHEMA, poster.ErrorCode(err))
		assert.Contains(t, poster.ErrorMessage(err), "price")
	})

	t.Run("non-string array element is a schema violation", func(t *testing.T) {
		t.Parallel()

		raw := `{"name":"A","tag":"t","shortDescription":"s","price":"p","summary":"m","features":[],"imageUrls":["a",3]}`

		_, err := poster.ParseRecord(raw)

		require.Error(t, err)
		assert.Equal(t, poster.ESCHEMA, poster.ErrorCode(err))
		assert.Contains(t, poster.ErrorMessage(err), "imageUrls")
	})

	t.Run("json array is a schema violation", func(t *testing.T) {
		t.Parallel()

		_, err := poster.ParseRecord(`[1, 2, 3]`)

		require.Error(t, err)
		assert.Equal(t, poster.ESCHEMA, poster.ErrorCode(err))
	})

	t.Run("non-json text is malformed", func(t *testing.T) {
		t.Parallel()

		_, err := poster.ParseRecord("Sorry, I could not read that page.")

		require.Error(t, err)
		assert.Equal(t, poster.EMALFORMEDJSON, poster.ErrorCode(err))
	})

	t.Run("broken json inside fence is malformed", func(t *testing.T) {
		t.Parallel()

		_, err := poster.ParseRecord("```json\n{\"name\": \"A\",\n```")

		require.Error(t, err)
		assert.Equal(t, poster.EMALFORMEDJSON, poster.ErrorCode(err))
	})

	t.Run("empty input is malformed", func(t *testing.T) {
		t.Parallel()

		_, err := poster.ParseRecord("")

		require.Error(t, err)
		assert.Equal(t, poster.EMALFORMEDJSON, poster.ErrorCode(err))
	})
}
