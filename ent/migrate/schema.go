// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisJobsColumns holds the columns for the "analysis_jobs" table.
	AnalysisJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "plan_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "current_phase", Type: field.TypeFloat64, Nullable: true},
		{Name: "current_phase_name", Type: field.TypeString, Nullable: true},
		{Name: "progress_detail", Type: field.TypeString, Nullable: true},
		{Name: "completed_phases", Type: field.TypeJSON, Nullable: true},
		{Name: "phase_results", Type: field.TypeJSON, Nullable: true},
		{Name: "total_llm_calls", Type: field.TypeInt, Default: 0},
		{Name: "total_input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "plan_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "request_snapshot", Type: field.TypeJSON, Nullable: true},
		{Name: "document_map", Type: field.TypeJSON, Nullable: true},
		{Name: "cancel_token", Type: field.TypeString},
		{Name: "workflow_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_interaction_at", Type: field.TypeTime, Nullable: true},
	}
	// AnalysisJobsTable holds the schema information for the "analysis_jobs" table.
	AnalysisJobsTable = &schema.Table{
		Name:       "analysis_jobs",
		Columns:    AnalysisJobsColumns,
		PrimaryKey: []*schema.Column{AnalysisJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisjob_status",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[2]},
			},
			{
				Name:    "analysisjob_plan_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[1]},
			},
			{
				Name:    "analysisjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[2], AnalysisJobsColumns[16]},
			},
			{
				Name:    "analysisjob_status_last_interaction_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisJobsColumns[2], AnalysisJobsColumns[21]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "author", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"target", "prior_work"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "char_count", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_role",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3]},
			},
			{
				Name:    "document_title",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
		},
	}
	// PhaseOutputsColumns holds the columns for the "phase_outputs" table.
	PhaseOutputsColumns = []*schema.Column{
		{Name: "output_id", Type: field.TypeString, Unique: true},
		{Name: "phase_number", Type: field.TypeFloat64},
		{Name: "engine_key", Type: field.TypeString},
		{Name: "pass_number", Type: field.TypeInt},
		{Name: "work_key", Type: field.TypeString, Default: ""},
		{Name: "stance_key", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeString, Default: "extraction"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "model_used", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "parent_id", Type: field.TypeString, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// PhaseOutputsTable holds the schema information for the "phase_outputs" table.
	PhaseOutputsTable = &schema.Table{
		Name:       "phase_outputs",
		Columns:    PhaseOutputsColumns,
		PrimaryKey: []*schema.Column{PhaseOutputsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "phase_outputs_analysis_jobs_outputs",
				Columns:    []*schema.Column{PhaseOutputsColumns[14]},
				RefColumns: []*schema.Column{AnalysisJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "phaseoutput_job_id_phase_number_engine_key_pass_number_work_key",
				Unique:  true,
				Columns: []*schema.Column{PhaseOutputsColumns[14], PhaseOutputsColumns[1], PhaseOutputsColumns[2], PhaseOutputsColumns[3], PhaseOutputsColumns[4]},
			},
			{
				Name:    "phaseoutput_job_id_phase_number",
				Unique:  false,
				Columns: []*schema.Column{PhaseOutputsColumns[14], PhaseOutputsColumns[1]},
			},
			{
				Name:    "phaseoutput_job_id_engine_key",
				Unique:  false,
				Columns: []*schema.Column{PhaseOutputsColumns[14], PhaseOutputsColumns[2]},
			},
		},
	}
	// PolishCachesColumns holds the columns for the "polish_caches" table.
	PolishCachesColumns = []*schema.Column{
		{Name: "polish_id", Type: field.TypeString, Unique: true},
		{Name: "view_key", Type: field.TypeString},
		{Name: "school_key", Type: field.TypeString},
		{Name: "prose", Type: field.TypeString, Size: 2147483647},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString},
	}
	// PolishCachesTable holds the schema information for the "polish_caches" table.
	PolishCachesTable = &schema.Table{
		Name:       "polish_caches",
		Columns:    PolishCachesColumns,
		PrimaryKey: []*schema.Column{PolishCachesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "polish_caches_analysis_jobs_polishes",
				Columns:    []*schema.Column{PolishCachesColumns[8]},
				RefColumns: []*schema.Column{AnalysisJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "polishcache_job_id_view_key_school_key",
				Unique:  true,
				Columns: []*schema.Column{PolishCachesColumns[8], PolishCachesColumns[1], PolishCachesColumns[2]},
			},
		},
	}
	// PresentationCachesColumns holds the columns for the "presentation_caches" table.
	PresentationCachesColumns = []*schema.Column{
		{Name: "cache_id", Type: field.TypeString, Unique: true},
		{Name: "section_key", Type: field.TypeString},
		{Name: "source_hash", Type: field.TypeString},
		{Name: "skip_hash_check", Type: field.TypeBool, Default: false},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "output_id", Type: field.TypeString},
	}
	// PresentationCachesTable holds the schema information for the "presentation_caches" table.
	PresentationCachesTable = &schema.Table{
		Name:       "presentation_caches",
		Columns:    PresentationCachesColumns,
		PrimaryKey: []*schema.Column{PresentationCachesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "presentation_caches_phase_outputs_cache_entries",
				Columns:    []*schema.Column{PresentationCachesColumns[7]},
				RefColumns: []*schema.Column{PhaseOutputsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "presentationcache_output_id_section_key",
				Unique:  true,
				Columns: []*schema.Column{PresentationCachesColumns[7], PresentationCachesColumns[1]},
			},
		},
	}
	// ViewRefinementsColumns holds the columns for the "view_refinements" table.
	ViewRefinementsColumns = []*schema.Column{
		{Name: "refinement_id", Type: field.TypeString, Unique: true},
		{Name: "refined_views", Type: field.TypeJSON},
		{Name: "change_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "model_used", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString, Unique: true},
	}
	// ViewRefinementsTable holds the schema information for the "view_refinements" table.
	ViewRefinementsTable = &schema.Table{
		Name:       "view_refinements",
		Columns:    ViewRefinementsColumns,
		PrimaryKey: []*schema.Column{ViewRefinementsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "view_refinements_analysis_jobs_view_refinement",
				Columns:    []*schema.Column{ViewRefinementsColumns[7]},
				RefColumns: []*schema.Column{AnalysisJobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "viewrefinement_job_id",
				Unique:  true,
				Columns: []*schema.Column{ViewRefinementsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisJobsTable,
		DocumentsTable,
		PhaseOutputsTable,
		PolishCachesTable,
		PresentationCachesTable,
		ViewRefinementsTable,
	}
)

func init() {
	PhaseOutputsTable.ForeignKeys[0].RefTable = AnalysisJobsTable
	PolishCachesTable.ForeignKeys[0].RefTable = AnalysisJobsTable
	PresentationCachesTable.ForeignKeys[0].RefTable = PhaseOutputsTable
	ViewRefinementsTable.ForeignKeys[0].RefTable = AnalysisJobsTable
}
