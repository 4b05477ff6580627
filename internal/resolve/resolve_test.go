package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siege-companion/internal/element"
	"siege-companion/internal/match"
	"siege-companion/internal/namedata"
)

func fixtureEngine() *Engine {
	return NewEngine(&namedata.Set{
		Elements: []string{"Fire", "Water", "Wind", "Light", "Dark"},
		Aliases: []namedata.Alias{
			{From: "GingerBrave", To: "Thomas"},
			{From: "Irène", To: "Irène"},
			{From: "Wind Qilin Slasher", To: "Zenitsu Agatsuma"},
			{From: "Zenitsu Agatsuma", To: "Zenitsu Agatsuma"},
		},
		Collabs: []namedata.Collab{
			{Collab: "Ryu", Variants: []string{"Moore", "Douglas", "Kashmir", "Talisman", "Vancliffe"}},
			{Collab: "GingerBrave", Variants: []string{"Thomas"}},
			{Collab: "Jin Kazama", Variants: []string{"Kai"}},
		},
		Synonyms: []namedata.Synonym{
			{A: "L.W.T. Blade Master", B: "Light White Tiger Blade Master"},
		},
	})
}

func TestSearchCollabExactKey(t *testing.T) {
	res := fixtureEngine().Search("ryu")
	assert.Equal(t, "Ryu", res.Collab)
	assert.Equal(t, []string{"Moore", "Douglas", "Kashmir", "Talisman", "Vancliffe"}, res.Variants)
	assert.Empty(t, res.Canonical)
}

func TestSearchCollabSubstring(t *testing.T) {
	// Four or more characters may match by containment.
	res := fixtureEngine().Search("ginger")
	assert.Equal(t, "GingerBrave", res.Collab)
	assert.Equal(t, []string{"Thomas"}, res.Variants)
}

func TestSearchShortKeyNoSubstring(t *testing.T) {
	// "ryu" matches exactly, but a three-character fragment of a longer
	// collab name must not match by containment.
	res := fixtureEngine().Search("gin")
	assert.Empty(t, res.Collab)
	assert.Equal(t, "gin", res.Canonical)
}

func TestSearchSingleVariantFillsAllSlots(t *testing.T) {
	res := fixtureEngine().Search("Jin Kazama")
	assert.Equal(t, []string{"Kai"}, res.Variants, "repeated slots collapse after dedup")
}

func TestSearchFallsBackToAlias(t *testing.T) {
	res := fixtureEngine().Search("Irene")
	assert.Empty(t, res.Collab)
	assert.Equal(t, "Irène", res.Canonical)
}

func TestSearchEmptyQuery(t *testing.T) {
	res := fixtureEngine().Search("   ")
	assert.Empty(t, res.Collab)
	assert.Equal(t, "   ", res.Canonical)
}

func TestTeamsPreservesShape(t *testing.T) {
	engine := fixtureEngine()
	teams := [][]string{
		{"GingerBrave", "Irene", "Unknown"},
		{"Zenitsu Agatsuma"},
	}
	got := engine.Teams(teams, nil, DefaultImportThreshold)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"Thomas", "Irène", "Unknown"}, got[0])
	assert.Equal(t, []string{"Zenitsu Agatsuma"}, got[1])
}

func TestTeamsFuzzyWithVocabulary(t *testing.T) {
	engine := fixtureEngine()
	vocabulary := []string{"Thomas", "Irène", "Sagar"}
	got := engine.Teams([][]string{{"gingerbrave", "sagat", "nothing close"}}, vocabulary, 0.3)
	assert.Equal(t, [][]string{{"Thomas", "Sagar", "nothing close"}}, got)
}

func TestResolveNamesReportsKinds(t *testing.T) {
	engine := fixtureEngine()
	vocabulary := []string{"Thomas", "Irène", "Sagar"}

	got := engine.ResolveNames([]string{"GingerBrave", "sagat", "Irène", "nobody"}, vocabulary, 0.3)
	require.Len(t, got, 4)

	assert.Equal(t, match.Result{Input: "GingerBrave", Resolved: "Thomas", Kind: match.KindAlias}, got[0])
	assert.Equal(t, match.Result{Input: "sagat", Resolved: "Sagar", Kind: match.KindFuzzy}, got[1])
	assert.Equal(t, match.Result{Input: "Irène", Resolved: "Irène", Kind: match.KindIdentity}, got[2])
	assert.Equal(t, match.Result{Input: "nobody", Resolved: "nobody", Kind: match.KindUnresolved}, got[3])
}

func TestDetectEndToEnd(t *testing.T) {
	engine := fixtureEngine()
	vocabulary := []string{"Zenitsu Agatsuma", "Irène", "Thomas", "Vancliffe", "Sagar"}

	detection := engine.Detect(
		[]string{"wind qilin slasher", "Irene", "GingerBrave"},
		vocabulary,
		nil,
		element.Groups{},
		DefaultDetectThreshold,
	)

	assert.ElementsMatch(t, []string{"Zenitsu Agatsuma", "Irène", "Thomas"}, detection.Confirmed)
	assert.ElementsMatch(t, []string{"Zenitsu Agatsuma", "Irène", "Thomas"}, detection.Display)
}

func TestDetectElementFanOut(t *testing.T) {
	engine := fixtureEngine()
	groups := element.Groups{"Bearman": {"Light", "Dark"}}
	vocabulary := []string{"Bearman", "Thomas"}

	detection := engine.Detect([]string{"Bearman"}, vocabulary, nil, groups, DefaultDetectThreshold)

	// The bare name and both fan-out forms are confirmed (the qualified
	// forms enter the allow-set through the groups).
	assert.ElementsMatch(t,
		[]string{"Bearman", "Light Bearman", "Dark Bearman"},
		detection.Confirmed)
	// The user supplied the bare name, so every form is display-safe.
	assert.ElementsMatch(t, detection.Confirmed, detection.Display)
}

func TestDetectHidesSyntheticBases(t *testing.T) {
	engine := fixtureEngine()
	groups := element.Groups{"Bearman": {"Light", "Dark"}}
	vocabulary := []string{"Bearman", "Light Bearman"}

	detection := engine.Detect([]string{"Light Bearman"}, vocabulary, nil, groups, DefaultDetectThreshold)

	assert.ElementsMatch(t, []string{"Light Bearman", "Bearman"}, detection.Confirmed)
	// The bare base only entered through element stripping; hide it.
	assert.Equal(t, []string{"Light Bearman"}, detection.Display)
}

func TestDetectDropsNamesOutsideAllowSet(t *testing.T) {
	engine := fixtureEngine()
	detection := engine.Detect(
		[]string{"Complete Hallucination", "Thomas"},
		[]string{"Thomas"},
		nil,
		element.Groups{},
		DefaultDetectThreshold,
	)
	assert.Equal(t, []string{"Thomas"}, detection.Confirmed)
	assert.Equal(t, []string{"Thomas"}, detection.Display)
}

func TestDetectDefenseNamesExtendAllowSet(t *testing.T) {
	engine := fixtureEngine()
	detection := engine.Detect(
		[]string{"Crystal Titan"},
		[]string{"Thomas"},
		[]string{"Crystal Titan"},
		element.Groups{},
		DefaultDetectThreshold,
	)
	assert.Equal(t, []string{"Crystal Titan"}, detection.Confirmed)
}

func TestDetectEmptyInputs(t *testing.T) {
	engine := fixtureEngine()
	detection := engine.Detect(nil, nil, nil, nil, DefaultDetectThreshold)
	assert.Empty(t, detection.Confirmed)
	assert.Empty(t, detection.Display)
}

func TestDefaultEngineEndToEnd(t *testing.T) {
	engine := NewDefaultEngine()
	vocabulary := []string{"Zenitsu Agatsuma", "Irène", "Thomas", "Vancliffe", "Sagar"}

	detection := engine.Detect(
		[]string{"wind qilin slasher", "Irene", "GingerBrave"},
		vocabulary,
		nil,
		element.Groups{},
		DefaultDetectThreshold,
	)
	assert.ElementsMatch(t, []string{"Zenitsu Agatsuma", "Irène", "Thomas"}, detection.Confirmed)
}
