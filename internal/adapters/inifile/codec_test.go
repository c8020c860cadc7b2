package inifile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/schemer/internal/domain"
)

func seq(s string) domain.KeySequence {
	return domain.MustParseKeySequence(s)
}

func TestMarshal_KeysNumberedPerSection(t *testing.T) {
	custom := domain.NewScheme()
	custom.Add(domain.NewTab, seq("Ctrl+Shift+T"))
	custom.Add(domain.NewTab, seq("Alt+T"))
	custom.Add(domain.Find, seq("Ctrl+F"))

	other := domain.NewScheme()
	other.Add(domain.Print, seq("Ctrl+P"))

	collection := domain.NewSchemeCollection("1.2.0")
	collection.Schemes["Custom"] = custom
	collection.Schemes["Other"] = other

	data, err := Marshal(collection)
	require.NoError(t, err)
	text := string(data)

	assert.Regexp(t, `appVersion\s*=\s*1\.2\.0`, text)
	assert.Regexp(t, `\[Custom\]\s+0_NewTab\s*=\s*Ctrl\+Shift\+T\s+1_NewTab\s*=\s*Alt\+T\s+2_Find\s*=\s*Ctrl\+F`, text)
	assert.Regexp(t, `\[Other\]\s+0_Print\s*=\s*Ctrl\+P`, text)
}

func TestRoundTrip(t *testing.T) {
	custom := domain.NewScheme()
	custom.Add(domain.NewTab, seq("Ctrl+Shift+T"))
	custom.Add(domain.NewTab, seq("Ctrl+T"))
	custom.Add(domain.ZoomIn, seq("Ctrl+="))
	custom.Add(domain.Stop, seq("Ctrl+;"))
	custom.Add(domain.WebSearch, seq("Ctrl+#"))
	custom.Add(domain.Preferences, seq("Ctrl+,"))
	custom.Add(domain.ShowDownloads, seq("Ctrl+K, Ctrl+D"))
	custom.Add(domain.NewWindow, seq("Ctrl+\\"))
	custom.Add(domain.OpenFile, seq("Ctrl+O"))

	collection := domain.NewSchemeCollection("2.0")
	collection.Schemes["Custom"] = custom
	collection.Schemes["Default"] = domain.DefaultScheme()
	collection.Schemes["Empty"] = domain.NewScheme()

	data, err := Marshal(collection)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)

	assert.Equal(t, "2.0", decoded.Version)
	require.Len(t, decoded.Schemes, 3)
	for name, scheme := range collection.Schemes {
		assert.True(t, scheme.Equal(decoded.Schemes[name]), "scheme %s", name)
	}
	// binding order survives too
	assert.Equal(t, custom.Sequences(domain.NewTab), decoded.Schemes["Custom"].Sequences(domain.NewTab))
	assert.True(t, decoded.Schemes["Empty"].IsEmpty())
}

func TestRoundTrip_TrailingBackslash(t *testing.T) {
	scheme := domain.NewScheme()
	scheme.Add(domain.NewWindow, seq("Ctrl+\\"))
	scheme.Add(domain.NewTab, seq("Ctrl+T"))
	scheme.Add(domain.OpenFile, seq("\\"))
	scheme.Add(domain.CloseTab, seq("Ctrl+W"))

	collection := domain.NewSchemeCollection("1.0")
	collection.Schemes["X"] = scheme

	data, err := Marshal(collection)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)

	require.Contains(t, decoded.Schemes, "X")
	assert.Equal(t, []domain.KeySequence{seq("Ctrl+\\")}, decoded.Schemes["X"].Sequences(domain.NewWindow))
	assert.Equal(t, []domain.KeySequence{seq("Ctrl+T")}, decoded.Schemes["X"].Sequences(domain.NewTab))
	assert.True(t, scheme.Equal(decoded.Schemes["X"]))
}

func TestUnmarshal_SkipsBadKeys(t *testing.T) {
	data := strings.Join([]string{
		"appVersion = 0.9",
		"",
		"[Custom]",
		"NewTab = Ctrl+T",
		"0_Bogus = Ctrl+B",
		"1_Find = Ctrl+Bogus+F",
		"2_Print = Ctrl+P",
		"",
	}, "\n")

	collection, err := Unmarshal([]byte(data))
	require.NoError(t, err)

	assert.Equal(t, "0.9", collection.Version)
	custom := collection.Schemes["Custom"]
	require.NotNil(t, custom)
	assert.Equal(t, []domain.Action{domain.Print}, custom.Actions())
	assert.Equal(t, []domain.KeySequence{seq("Ctrl+P")}, custom.Sequences(domain.Print))
}

func TestUnmarshal_OrdersByIndex(t *testing.T) {
	data := strings.Join([]string{
		"[Custom]",
		"10_NewTab = Alt+T",
		"2_NewTab = Ctrl+T",
		"x_NewTab = Ctrl+Shift+T",
		"0_NewTab = Ctrl+N",
		"",
	}, "\n")

	collection, err := Unmarshal([]byte(data))
	require.NoError(t, err)

	assert.Equal(t,
		[]domain.KeySequence{seq("Ctrl+N"), seq("Ctrl+T"), seq("Alt+T"), seq("Ctrl+Shift+T")},
		collection.Schemes["Custom"].Sequences(domain.NewTab))
}

func TestUnmarshal_NoVersion(t *testing.T) {
	collection, err := Unmarshal([]byte("[Custom]\n0_Find = Ctrl+F\n"))
	require.NoError(t, err)

	assert.Equal(t, "", collection.Version)
	assert.NotContains(t, collection.Schemes, "DEFAULT")
	assert.Len(t, collection.Schemes, 1)
}

func TestUnmarshal_Empty(t *testing.T) {
	collection, err := Unmarshal(nil)
	require.NoError(t, err)
	assert.Empty(t, collection.Schemes)
}
