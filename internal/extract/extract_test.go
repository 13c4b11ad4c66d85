package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"docassist/internal/domain"
	"docassist/internal/extract"
)

// --- FillField ---

func TestExtract_Fill_MergesAndStrips(t *testing.T) {
	raw := "Got it, next please.\n[UPDATED_FIELDS]\n{\"Name\":\"Asha\"}\n[/UPDATED_FIELDS]"

	res := extract.Extract(domain.TaskFillField, raw, domain.FieldMap{}, nil)

	assert.Equal(t, "Got it, next please.", res.Text)
	assert.Equal(t, domain.FieldMap{"Name": "Asha"}, res.UpdatedFields)
}

func TestExtract_Fill_RightBiasedMerge(t *testing.T) {
	prior := domain.FieldMap{"Name": "Asha", "Village": "Rampur"}
	raw := `Updated. [UPDATED_FIELDS]{"Name":"Asha Devi","Age":"34"}[/UPDATED_FIELDS]`

	res := extract.Extract(domain.TaskFillField, raw, prior, nil)

	assert.Equal(t, domain.FieldMap{"Name": "Asha Devi", "Village": "Rampur", "Age": "34"}, res.UpdatedFields)
	assert.Equal(t, "Updated.", res.Text)
	// prior is untouched
	assert.Equal(t, domain.FieldMap{"Name": "Asha", "Village": "Rampur"}, prior)
}

func TestExtract_Fill_NoBlockKeepsPriorAndText(t *testing.T) {
	prior := domain.FieldMap{"Name": "Asha"}

	res := extract.Extract(domain.TaskFillField, "  Could you repeat that?  ", prior, nil)

	assert.Equal(t, "Could you repeat that?", res.Text)
	assert.Equal(t, prior, res.UpdatedFields)
}

func TestExtract_Fill_NilPriorYieldsEmptyMap(t *testing.T) {
	res := extract.Extract(domain.TaskFillField, "Hello", nil, nil)

	require.NotNil(t, res.UpdatedFields)
	assert.Empty(t, res.UpdatedFields)
}

func TestExtract_Fill_MalformedBlockIsStrippedAndLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	prior := domain.FieldMap{"Name": "Asha"}
	raw := "Thanks! [UPDATED_FIELDS]{Name: Asha[/UPDATED_FIELDS]"

	res := extract.Extract(domain.TaskFillField, raw, prior, zap.New(core))

	assert.Equal(t, "Thanks!", res.Text)
	assert.Equal(t, prior, res.UpdatedFields)
	assert.Equal(t, 1, logs.Len())
}

func TestExtract_Fill_NonObjectBlockIgnored(t *testing.T) {
	res := extract.Extract(domain.TaskFillField, `Ok [UPDATED_FIELDS]["Name"][/UPDATED_FIELDS]`, domain.FieldMap{}, nil)

	assert.Equal(t, "Ok", res.Text)
	assert.Empty(t, res.UpdatedFields)
}

func TestExtract_Fill_FirstBlockParsedAllStripped(t *testing.T) {
	raw := `A [UPDATED_FIELDS]{"Name":"Asha"}[/UPDATED_FIELDS] B [UPDATED_FIELDS]{"Name":"Ravi"}[/UPDATED_FIELDS] C`

	res := extract.Extract(domain.TaskFillField, raw, nil, nil)

	assert.Equal(t, domain.FieldMap{"Name": "Asha"}, res.UpdatedFields)
	assert.NotContains(t, res.Text, "UPDATED_FIELDS")
	assert.Equal(t, "A  B  C", res.Text)
}

func TestExtract_Fill_CodeFencedBlock(t *testing.T) {
	raw := "Done.\n[UPDATED_FIELDS]\n```json\n{\"Pincode\": \"110001\"}\n```\n[/UPDATED_FIELDS]"

	res := extract.Extract(domain.TaskFillField, raw, nil, nil)

	assert.Equal(t, domain.FieldMap{"Pincode": "110001"}, res.UpdatedFields)
	assert.Equal(t, "Done.", res.Text)
}

func TestExtract_Fill_NonStringValuesBecomeText(t *testing.T) {
	raw := `[UPDATED_FIELDS]{"Age": 34, "Married": true, "Spouse": null}[/UPDATED_FIELDS]`

	res := extract.Extract(domain.TaskFillField, raw, nil, nil)

	assert.Equal(t, domain.FieldMap{"Age": "34", "Married": "true", "Spouse": ""}, res.UpdatedFields)
	assert.Equal(t, "", res.Text)
}

// --- PictogramHelp ---

func TestExtract_Pictogram_BothMarkers(t *testing.T) {
	raw := "Here you go.\n[EXPLANATION]\n  Write your full name.\nFor example: Asha Kumari.  \n[/EXPLANATION]\n[ICON] person [/ICON]"

	res := extract.Extract(domain.TaskPictogramHelp, raw, nil, nil)

	assert.Equal(t, "Write your full name.\nFor example: Asha Kumari.", res.Explanation)
	assert.Equal(t, "person", res.Icon)
}

func TestExtract_Pictogram_MissingIconDefaults(t *testing.T) {
	res := extract.Extract(domain.TaskPictogramHelp, "[EXPLANATION]Your date of birth.[/EXPLANATION]", nil, nil)

	assert.Equal(t, "Your date of birth.", res.Explanation)
	assert.Equal(t, domain.DefaultIcon, res.Icon)
}

func TestExtract_Pictogram_MissingExplanationDefaults(t *testing.T) {
	res := extract.Extract(domain.TaskPictogramHelp, "Some prose [ICON]cake[/ICON]", nil, nil)

	assert.Equal(t, domain.DefaultExplanation, res.Explanation)
	assert.Equal(t, "cake", res.Icon)
}

func TestExtract_Pictogram_IconAcrossLinesNotMatched(t *testing.T) {
	res := extract.Extract(domain.TaskPictogramHelp, "[ICON]\nperson\n[/ICON]", nil, nil)

	assert.Equal(t, domain.DefaultIcon, res.Icon)
}

func TestExtract_Pictogram_IconNotValidatedAgainstVocabulary(t *testing.T) {
	res := extract.Extract(domain.TaskPictogramHelp, "[ICON]rocket_launch[/ICON]", nil, nil)

	assert.Equal(t, "rocket_launch", res.Icon)
}

// --- Pass-through kinds ---

func TestExtract_PassThroughKindsReturnRawVerbatim(t *testing.T) {
	raw := "  === DOCUMENT TEXT ===\n[UPDATED_FIELDS]{}[/UPDATED_FIELDS]\n"
	for _, kind := range []domain.TaskKind{
		domain.TaskExtractDocument,
		domain.TaskAnswerAboutDocument,
		domain.TaskAnalyzeForFilling,
		domain.TaskSummarizeFilled,
	} {
		t.Run(string(kind), func(t *testing.T) {
			res := extract.Extract(kind, raw, domain.FieldMap{"a": "b"}, nil)
			assert.Equal(t, raw, res.Text)
			assert.Nil(t, res.UpdatedFields)
		})
	}
}

// --- ParseFieldMap ---

func TestParseFieldMap(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    domain.FieldMap
		wantErr bool
	}{
		{name: "object", in: ` {"Name":"Asha"} `, want: domain.FieldMap{"Name": "Asha"}},
		{name: "empty object", in: `{}`, want: domain.FieldMap{}},
		{name: "fenced", in: "```\n{\"A\":\"1\"}\n```", want: domain.FieldMap{"A": "1"}},
		{name: "array", in: `["A"]`, wantErr: true},
		{name: "broken", in: `{"A":`, wantErr: true},
		{name: "empty", in: ``, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extract.ParseFieldMap(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
