package services

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/pkg/config"
)

// setupTestDB spins up a disposable PostgreSQL container and returns an ent
// client against an auto-migrated schema.
func setupTestDB(t *testing.T) *ent.Client {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)
	db := drv.DB()
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(ctx))

	t.Cleanup(func() { _ = client.Close() })
	return client
}

// svcBundle wires the full service graph against one client, the same way
// cmd/cipherswarmd does at boot.
type svcBundle struct {
	tasks       *TaskService
	attacks     *AttackService
	campaigns   *CampaignService
	matcher     *MatcherService
	lease       *LeaseService
	progress    *ProgressService
	results     *ResultService
	agents      *AgentService
	benchmarks  *BenchmarkService
	agentErrors *AgentErrorService
}

func newServices(client *ent.Client) svcBundle {
	tasks := NewTaskService(client, config.DefaultProgressConfig(), nil)
	attacks := NewAttackService(client, tasks, nil)
	tasks.SetAttackService(attacks)
	return svcBundle{
		tasks:       tasks,
		attacks:     attacks,
		campaigns:   NewCampaignService(client, attacks, nil),
		matcher:     NewMatcherService(client, attacks, tasks, config.DefaultMatcherConfig()),
		lease:       NewLeaseService(client, tasks, attacks, config.DefaultLeaseConfig(), nil),
		progress:    NewProgressService(client, tasks, nil),
		results:     NewResultService(client, tasks, nil),
		agents:      NewAgentService(client, tasks, []byte("test-secret")),
		benchmarks:  NewBenchmarkService(client),
		agentErrors: NewAgentErrorService(client, tasks),
	}
}

// fixtures is the canonical dictionary-attack world: a project, a hash
// list with three MD5 hashes, a 1000-line word list, a 10-line rule list,
// an active routine campaign with one dictionary attack, and an active
// agent with a fresh MD5 benchmark of 1e8 H/s.
type fixtures struct {
	project  *ent.Project
	hashList *ent.HashList
	items    []*ent.HashItem
	wordList *ent.Resource
	ruleList *ent.Resource
	campaign *ent.Campaign
	attack   *ent.Attack
	agent    *ent.Agent
}

func newDictionaryFixtures(t *testing.T, client *ent.Client) *fixtures {
	ctx := context.Background()

	project, err := client.Project.Create().SetName("acme").Save(ctx)
	require.NoError(t, err)

	hashList, err := client.HashList.Create().
		SetProject(project).
		SetName("domain-dump").
		SetHashMode(0).
		SetUncrackedCount(3).
		Save(ctx)
	require.NoError(t, err)

	items := make([]*ent.HashItem, 0, 3)
	for _, h := range []string{"h1", "h2", "h3"} {
		item, err := client.HashItem.Create().
			SetHashList(hashList).
			SetHashValue(h).
			Save(ctx)
		require.NoError(t, err)
		items = append(items, item)
	}

	wordList, err := client.Resource.Create().
		SetName("rockyou-small").
		SetKind("word_list").
		SetFileHandle("resources/word_list/w1").
		SetLineCount(1000).
		Save(ctx)
	require.NoError(t, err)

	ruleList, err := client.Resource.Create().
		SetName("best10").
		SetKind("rule_list").
		SetFileHandle("resources/rule_list/r1").
		SetLineCount(10).
		Save(ctx)
	require.NoError(t, err)

	camp, err := client.Campaign.Create().
		SetProject(project).
		SetHashList(hashList).
		SetName("acme-md5").
		SetPriority(campaign.PriorityRoutine).
		SetState(campaign.StateActive).
		Save(ctx)
	require.NoError(t, err)

	attk, err := client.Attack.Create().
		SetCampaign(camp).
		SetPosition(0).
		SetAttackMode("dictionary").
		SetWordList(wordList).
		SetRuleList(ruleList).
		Save(ctx)
	require.NoError(t, err)

	ag := newActiveAgent(t, client, project, "agent-a")

	return &fixtures{
		project:  project,
		hashList: hashList,
		items:    items,
		wordList: wordList,
		ruleList: ruleList,
		campaign: camp,
		attack:   attk,
		agent:    ag,
	}
}

// newActiveAgent creates an active agent in project with a fresh MD5
// benchmark of 1e8 H/s.
func newActiveAgent(t *testing.T, client *ent.Client, project *ent.Project, hostName string) *ent.Agent {
	ctx := context.Background()

	ag, err := client.Agent.Create().
		SetHostName(hostName).
		SetClientSignature("cipherswarm-agent/1.0").
		SetOperatingSystem("linux").
		SetToken("csa_test_" + hostName).
		SetState(agent.StateActive).
		AddProjects(project).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Benchmark.Create().
		SetAgent(ag).
		SetHashType(0).
		SetDeviceIndex(0).
		SetHashSpeed(1e8).
		SetRuntimeMs(60000).
		Save(ctx)
	require.NoError(t, err)

	return ag
}
