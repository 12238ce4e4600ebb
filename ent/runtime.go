// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/ent/document"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/polishcache"
	"github.com/exegete-ai/exegete/ent/presentationcache"
	"github.com/exegete-ai/exegete/ent/schema"
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescTotalLlmCalls is the schema descriptor for total_llm_calls field.
	analysisjobDescTotalLlmCalls := analysisjobFields[8].Descriptor()
	// analysisjob.DefaultTotalLlmCalls holds the default value on creation for the total_llm_calls field.
	analysisjob.DefaultTotalLlmCalls = analysisjobDescTotalLlmCalls.Default.(int)
	// analysisjobDescTotalInputTokens is the schema descriptor for total_input_tokens field.
	analysisjobDescTotalInputTokens := analysisjobFields[9].Descriptor()
	// analysisjob.DefaultTotalInputTokens holds the default value on creation for the total_input_tokens field.
	analysisjob.DefaultTotalInputTokens = analysisjobDescTotalInputTokens.Default.(int)
	// analysisjobDescTotalOutputTokens is the schema descriptor for total_output_tokens field.
	analysisjobDescTotalOutputTokens := analysisjobFields[10].Descriptor()
	// analysisjob.DefaultTotalOutputTokens holds the default value on creation for the total_output_tokens field.
	analysisjob.DefaultTotalOutputTokens = analysisjobDescTotalOutputTokens.Default.(int)
	// analysisjobDescCreatedAt is the schema descriptor for created_at field.
	analysisjobDescCreatedAt := analysisjobFields[16].Descriptor()
	// analysisjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisjob.DefaultCreatedAt = analysisjobDescCreatedAt.Default.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[6].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	phaseoutputFields := schema.PhaseOutput{}.Fields()
	_ = phaseoutputFields
	// phaseoutputDescWorkKey is the schema descriptor for work_key field.
	phaseoutputDescWorkKey := phaseoutputFields[5].Descriptor()
	// phaseoutput.DefaultWorkKey holds the default value on creation for the work_key field.
	phaseoutput.DefaultWorkKey = phaseoutputDescWorkKey.Default.(string)
	// phaseoutputDescRole is the schema descriptor for role field.
	phaseoutputDescRole := phaseoutputFields[7].Descriptor()
	// phaseoutput.DefaultRole holds the default value on creation for the role field.
	phaseoutput.DefaultRole = phaseoutputDescRole.Default.(string)
	// phaseoutputDescInputTokens is the schema descriptor for input_tokens field.
	phaseoutputDescInputTokens := phaseoutputFields[10].Descriptor()
	// phaseoutput.DefaultInputTokens holds the default value on creation for the input_tokens field.
	phaseoutput.DefaultInputTokens = phaseoutputDescInputTokens.Default.(int)
	// phaseoutputDescOutputTokens is the schema descriptor for output_tokens field.
	phaseoutputDescOutputTokens := phaseoutputFields[11].Descriptor()
	// phaseoutput.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	phaseoutput.DefaultOutputTokens = phaseoutputDescOutputTokens.Default.(int)
	// phaseoutputDescCreatedAt is the schema descriptor for created_at field.
	phaseoutputDescCreatedAt := phaseoutputFields[14].Descriptor()
	// phaseoutput.DefaultCreatedAt holds the default value on creation for the created_at field.
	phaseoutput.DefaultCreatedAt = phaseoutputDescCreatedAt.Default.(func() time.Time)
	polishcacheFields := schema.PolishCache{}.Fields()
	_ = polishcacheFields
	// polishcacheDescInputTokens is the schema descriptor for input_tokens field.
	polishcacheDescInputTokens := polishcacheFields[6].Descriptor()
	// polishcache.DefaultInputTokens holds the default value on creation for the input_tokens field.
	polishcache.DefaultInputTokens = polishcacheDescInputTokens.Default.(int)
	// polishcacheDescOutputTokens is the schema descriptor for output_tokens field.
	polishcacheDescOutputTokens := polishcacheFields[7].Descriptor()
	// polishcache.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	polishcache.DefaultOutputTokens = polishcacheDescOutputTokens.Default.(int)
	// polishcacheDescCreatedAt is the schema descriptor for created_at field.
	polishcacheDescCreatedAt := polishcacheFields[8].Descriptor()
	// polishcache.DefaultCreatedAt holds the default value on creation for the created_at field.
	polishcache.DefaultCreatedAt = polishcacheDescCreatedAt.Default.(func() time.Time)
	presentationcacheFields := schema.PresentationCache{}.Fields()
	_ = presentationcacheFields
	// presentationcacheDescSkipHashCheck is the schema descriptor for skip_hash_check field.
	presentationcacheDescSkipHashCheck := presentationcacheFields[4].Descriptor()
	// presentationcache.DefaultSkipHashCheck holds the default value on creation for the skip_hash_check field.
	presentationcache.DefaultSkipHashCheck = presentationcacheDescSkipHashCheck.Default.(bool)
	// presentationcacheDescCreatedAt is the schema descriptor for created_at field.
	presentationcacheDescCreatedAt := presentationcacheFields[7].Descriptor()
	// presentationcache.DefaultCreatedAt holds the default value on creation for the created_at field.
	presentationcache.DefaultCreatedAt = presentationcacheDescCreatedAt.Default.(func() time.Time)
	viewrefinementFields := schema.ViewRefinement{}.Fields()
	_ = viewrefinementFields
	// viewrefinementDescInputTokens is the schema descriptor for input_tokens field.
	viewrefinementDescInputTokens := viewrefinementFields[5].Descriptor()
	// viewrefinement.DefaultInputTokens holds the default value on creation for the input_tokens field.
	viewrefinement.DefaultInputTokens = viewrefinementDescInputTokens.Default.(int)
	// viewrefinementDescOutputTokens is the schema descriptor for output_tokens field.
	viewrefinementDescOutputTokens := viewrefinementFields[6].Descriptor()
	// viewrefinement.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	viewrefinement.DefaultOutputTokens = viewrefinementDescOutputTokens.Default.(int)
	// viewrefinementDescCreatedAt is the schema descriptor for created_at field.
	viewrefinementDescCreatedAt := viewrefinementFields[7].Descriptor()
	// viewrefinement.DefaultCreatedAt holds the default value on creation for the created_at field.
	viewrefinement.DefaultCreatedAt = viewrefinementDescCreatedAt.Default.(func() time.Time)
}
