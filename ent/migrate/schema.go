// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "host_name", Type: field.TypeString},
		{Name: "client_signature", Type: field.TypeString},
		{Name: "operating_system", Type: field.TypeString, Default: ""},
		{Name: "devices", Type: field.TypeJSON, Nullable: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "active", "stopped", "error"}, Default: "pending"},
		{Name: "last_seen_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_ipaddress", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "advanced_config", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agent_host_name_client_signature",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[1], AgentsColumns[2]},
			},
		},
	}
	// AgentErrorsColumns holds the columns for the "agent_errors" table.
	AgentErrorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"info", "warning", "fatal"}},
		{Name: "message", Type: field.TypeString},
		{Name: "context_json", Type: field.TypeString, Nullable: true, Default: "{}"},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt64},
		{Name: "task_id", Type: field.TypeInt64, Nullable: true},
	}
	// AgentErrorsTable holds the schema information for the "agent_errors" table.
	AgentErrorsTable = &schema.Table{
		Name:       "agent_errors",
		Columns:    AgentErrorsColumns,
		PrimaryKey: []*schema.Column{AgentErrorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_errors_agents_agent_errors",
				Columns:    []*schema.Column{AgentErrorsColumns[5]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "agent_errors_tasks_errors",
				Columns:    []*schema.Column{AgentErrorsColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenterror_severity_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{AgentErrorsColumns[1], AgentErrorsColumns[4]},
			},
		},
	}
	// AttacksColumns holds the columns for the "attacks" table.
	AttacksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "attack_mode", Type: field.TypeEnum, Enums: []string{"dictionary", "mask", "hybrid_dictionary", "hybrid_mask"}},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "exhausted", "failed"}, Default: "pending"},
		{Name: "mask", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "custom_charset_1", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "custom_charset_2", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "custom_charset_3", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "custom_charset_4", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "increment_mode", Type: field.TypeBool, Default: false},
		{Name: "increment_minimum", Type: field.TypeInt, Default: 0},
		{Name: "increment_maximum", Type: field.TypeInt, Default: 0},
		{Name: "workload_profile", Type: field.TypeInt, Default: 3},
		{Name: "optimized", Type: field.TypeBool, Default: false},
		{Name: "disable_markov", Type: field.TypeBool, Default: false},
		{Name: "classic_markov", Type: field.TypeBool, Default: false},
		{Name: "markov_threshold", Type: field.TypeInt, Default: 0},
		{Name: "slow_candidate_generators", Type: field.TypeBool, Default: false},
		{Name: "left_rule", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "right_rule", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "total_keyspace", Type: field.TypeInt64, Nullable: true},
		{Name: "start_time", Type: field.TypeTime, Nullable: true},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "word_list_id", Type: field.TypeInt64, Nullable: true},
		{Name: "rule_list_id", Type: field.TypeInt64, Nullable: true},
		{Name: "mask_list_id", Type: field.TypeInt64, Nullable: true},
		{Name: "campaign_id", Type: field.TypeInt64},
	}
	// AttacksTable holds the schema information for the "attacks" table.
	AttacksTable = &schema.Table{
		Name:       "attacks",
		Columns:    AttacksColumns,
		PrimaryKey: []*schema.Column{AttacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "attacks_resources_word_list",
				Columns:    []*schema.Column{AttacksColumns[25]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "attacks_resources_rule_list",
				Columns:    []*schema.Column{AttacksColumns[26]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "attacks_resources_mask_list",
				Columns:    []*schema.Column{AttacksColumns[27]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "attacks_campaigns_attacks",
				Columns:    []*schema.Column{AttacksColumns[28]},
				RefColumns: []*schema.Column{CampaignsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "attack_position",
				Unique:  false,
				Columns: []*schema.Column{AttacksColumns[1]},
			},
			{
				Name:    "attack_state",
				Unique:  false,
				Columns: []*schema.Column{AttacksColumns[3]},
			},
		},
	}
	// BenchmarksColumns holds the columns for the "benchmarks" table.
	BenchmarksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "hash_type", Type: field.TypeInt},
		{Name: "device_index", Type: field.TypeInt},
		{Name: "hash_speed", Type: field.TypeFloat64},
		{Name: "runtime_ms", Type: field.TypeInt64},
		{Name: "measured_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt64},
	}
	// BenchmarksTable holds the schema information for the "benchmarks" table.
	BenchmarksTable = &schema.Table{
		Name:       "benchmarks",
		Columns:    BenchmarksColumns,
		PrimaryKey: []*schema.Column{BenchmarksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "benchmarks_agents_benchmarks",
				Columns:    []*schema.Column{BenchmarksColumns[6]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "benchmark_hash_type_device_index_agent_id",
				Unique:  true,
				Columns: []*schema.Column{BenchmarksColumns[1], BenchmarksColumns[2], BenchmarksColumns[6]},
			},
		},
	}
	// CampaignsColumns holds the columns for the "campaigns" table.
	CampaignsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"deferred", "routine", "priority", "urgent", "immediate", "flash"}, Default: "routine"},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"draft", "active", "completed", "archived"}, Default: "draft"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "hash_list_id", Type: field.TypeInt64},
		{Name: "project_id", Type: field.TypeInt64},
	}
	// CampaignsTable holds the schema information for the "campaigns" table.
	CampaignsTable = &schema.Table{
		Name:       "campaigns",
		Columns:    CampaignsColumns,
		PrimaryKey: []*schema.Column{CampaignsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "campaigns_hash_lists_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[6]},
				RefColumns: []*schema.Column{HashListsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "campaigns_projects_campaigns",
				Columns:    []*schema.Column{CampaignsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "campaign_state_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{CampaignsColumns[3], CampaignsColumns[2], CampaignsColumns[4]},
			},
		},
	}
	// CrackResultsColumns holds the columns for the "crack_results" table.
	CrackResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "hash_value", Type: field.TypeString},
		{Name: "plaintext", Type: field.TypeString},
		{Name: "cracked_at", Type: field.TypeTime},
		{Name: "hash_item_id", Type: field.TypeInt64},
		{Name: "task_id", Type: field.TypeInt64},
	}
	// CrackResultsTable holds the schema information for the "crack_results" table.
	CrackResultsTable = &schema.Table{
		Name:       "crack_results",
		Columns:    CrackResultsColumns,
		PrimaryKey: []*schema.Column{CrackResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "crack_results_hash_items_crack_results",
				Columns:    []*schema.Column{CrackResultsColumns[4]},
				RefColumns: []*schema.Column{HashItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "crack_results_tasks_crack_results",
				Columns:    []*schema.Column{CrackResultsColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "crackresult_hash_value",
				Unique:  false,
				Columns: []*schema.Column{CrackResultsColumns[1]},
			},
			{
				Name:    "crackresult_task_id_hash_item_id",
				Unique:  true,
				Columns: []*schema.Column{CrackResultsColumns[5], CrackResultsColumns[4]},
			},
		},
	}
	// HashItemsColumns holds the columns for the "hash_items" table.
	HashItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "hash_value", Type: field.TypeString},
		{Name: "metadata", Type: field.TypeString, Nullable: true},
		{Name: "is_cracked", Type: field.TypeBool, Default: false},
		{Name: "plaintext", Type: field.TypeString, Nullable: true},
		{Name: "cracked_at", Type: field.TypeTime, Nullable: true},
		{Name: "hash_list_id", Type: field.TypeInt64},
	}
	// HashItemsTable holds the schema information for the "hash_items" table.
	HashItemsTable = &schema.Table{
		Name:       "hash_items",
		Columns:    HashItemsColumns,
		PrimaryKey: []*schema.Column{HashItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hash_items_hash_lists_items",
				Columns:    []*schema.Column{HashItemsColumns[6]},
				RefColumns: []*schema.Column{HashListsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hashitem_hash_value",
				Unique:  false,
				Columns: []*schema.Column{HashItemsColumns[1]},
			},
			{
				Name:    "hashitem_is_cracked",
				Unique:  false,
				Columns: []*schema.Column{HashItemsColumns[3]},
			},
		},
	}
	// HashListsColumns holds the columns for the "hash_lists" table.
	HashListsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "hash_mode", Type: field.TypeInt},
		{Name: "uncracked_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeInt64},
	}
	// HashListsTable holds the schema information for the "hash_lists" table.
	HashListsTable = &schema.Table{
		Name:       "hash_lists",
		Columns:    HashListsColumns,
		PrimaryKey: []*schema.Column{HashListsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hash_lists_projects_hash_lists",
				Columns:    []*schema.Column{HashListsColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// HashcatStatusColumns holds the columns for the "hashcat_status" table.
	HashcatStatusColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "session", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "status_code", Type: field.TypeInt},
		{Name: "target", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "progress_done", Type: field.TypeInt64},
		{Name: "progress_total", Type: field.TypeInt64},
		{Name: "restore_point", Type: field.TypeInt64, Nullable: true, Default: 0},
		{Name: "recovered_hashes", Type: field.TypeJSON, Nullable: true},
		{Name: "recovered_salts", Type: field.TypeJSON, Nullable: true},
		{Name: "rejected", Type: field.TypeInt64, Nullable: true, Default: 0},
		{Name: "devices", Type: field.TypeJSON, Nullable: true},
		{Name: "time_start", Type: field.TypeTime, Nullable: true},
		{Name: "estimated_stop", Type: field.TypeTime, Nullable: true},
		{Name: "hashcat_guess", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "task_id", Type: field.TypeInt64},
	}
	// HashcatStatusTable holds the schema information for the "hashcat_status" table.
	HashcatStatusTable = &schema.Table{
		Name:       "hashcat_status",
		Columns:    HashcatStatusColumns,
		PrimaryKey: []*schema.Column{HashcatStatusColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "hashcat_status_tasks_statuses",
				Columns:    []*schema.Column{HashcatStatusColumns[15]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "hashcatstatus_received_at_task_id",
				Unique:  false,
				Columns: []*schema.Column{HashcatStatusColumns[1], HashcatStatusColumns[15]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// ResourcesColumns holds the columns for the "resources" table.
	ResourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"word_list", "rule_list", "mask_list"}},
		{Name: "file_handle", Type: field.TypeString},
		{Name: "line_count", Type: field.TypeInt64, Nullable: true},
		{Name: "sensitive", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ResourcesTable holds the schema information for the "resources" table.
	ResourcesTable = &schema.Table{
		Name:       "resources",
		Columns:    ResourcesColumns,
		PrimaryKey: []*schema.Column{ResourcesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resource_kind",
				Unique:  false,
				Columns: []*schema.Column{ResourcesColumns[2]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "running", "paused", "completed", "exhausted", "failed"}, Default: "pending"},
		{Name: "keyspace_offset", Type: field.TypeInt64},
		{Name: "keyspace_limit", Type: field.TypeInt64},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "activity_timestamp", Type: field.TypeTime},
		{Name: "stale", Type: field.TypeBool, Default: false},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeInt64, Nullable: true},
		{Name: "attack_id", Type: field.TypeInt64},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_agents_tasks",
				Columns:    []*schema.Column{TasksColumns[9]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "tasks_attacks_tasks",
				Columns:    []*schema.Column{TasksColumns[10]},
				RefColumns: []*schema.Column{AttacksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_state_activity_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[5]},
			},
			{
				Name:    "task_keyspace_offset",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[2]},
			},
		},
	}
	// ProjectResourcesColumns holds the columns for the "project_resources" table.
	ProjectResourcesColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeInt},
		{Name: "resource_id", Type: field.TypeInt},
	}
	// ProjectResourcesTable holds the schema information for the "project_resources" table.
	ProjectResourcesTable = &schema.Table{
		Name:       "project_resources",
		Columns:    ProjectResourcesColumns,
		PrimaryKey: []*schema.Column{ProjectResourcesColumns[0], ProjectResourcesColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_resources_project_id",
				Columns:    []*schema.Column{ProjectResourcesColumns[0]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "project_resources_resource_id",
				Columns:    []*schema.Column{ProjectResourcesColumns[1]},
				RefColumns: []*schema.Column{ResourcesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ProjectAgentsColumns holds the columns for the "project_agents" table.
	ProjectAgentsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeInt},
		{Name: "agent_id", Type: field.TypeInt},
	}
	// ProjectAgentsTable holds the schema information for the "project_agents" table.
	ProjectAgentsTable = &schema.Table{
		Name:       "project_agents",
		Columns:    ProjectAgentsColumns,
		PrimaryKey: []*schema.Column{ProjectAgentsColumns[0], ProjectAgentsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_agents_project_id",
				Columns:    []*schema.Column{ProjectAgentsColumns[0]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "project_agents_agent_id",
				Columns:    []*schema.Column{ProjectAgentsColumns[1]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentsTable,
		AgentErrorsTable,
		AttacksTable,
		BenchmarksTable,
		CampaignsTable,
		CrackResultsTable,
		HashItemsTable,
		HashListsTable,
		HashcatStatusTable,
		ProjectsTable,
		ResourcesTable,
		TasksTable,
		ProjectResourcesTable,
		ProjectAgentsTable,
	}
)

func init() {
	AgentErrorsTable.ForeignKeys[0].RefTable = AgentsTable
	AgentErrorsTable.ForeignKeys[1].RefTable = TasksTable
	AttacksTable.ForeignKeys[0].RefTable = ResourcesTable
	AttacksTable.ForeignKeys[1].RefTable = ResourcesTable
	AttacksTable.ForeignKeys[2].RefTable = ResourcesTable
	AttacksTable.ForeignKeys[3].RefTable = CampaignsTable
	BenchmarksTable.ForeignKeys[0].RefTable = AgentsTable
	CampaignsTable.ForeignKeys[0].RefTable = HashListsTable
	CampaignsTable.ForeignKeys[1].RefTable = ProjectsTable
	CrackResultsTable.ForeignKeys[0].RefTable = HashItemsTable
	CrackResultsTable.ForeignKeys[1].RefTable = TasksTable
	HashItemsTable.ForeignKeys[0].RefTable = HashListsTable
	HashListsTable.ForeignKeys[0].RefTable = ProjectsTable
	HashcatStatusTable.ForeignKeys[0].RefTable = TasksTable
	TasksTable.ForeignKeys[0].RefTable = AgentsTable
	TasksTable.ForeignKeys[1].RefTable = AttacksTable
	ProjectResourcesTable.ForeignKeys[0].RefTable = ProjectsTable
	ProjectResourcesTable.ForeignKeys[1].RefTable = ResourcesTable
	ProjectAgentsTable.ForeignKeys[0].RefTable = ProjectsTable
	ProjectAgentsTable.ForeignKeys[1].RefTable = AgentsTable
}
