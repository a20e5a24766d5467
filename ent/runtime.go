// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/schema"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescHostName is the schema descriptor for host_name field.
	agentDescHostName := agentFields[0].Descriptor()
	// agent.HostNameValidator is a validator for the "host_name" field. It is called by the builders before save.
	agent.HostNameValidator = agentDescHostName.Validators[0].(func(string) error)
	// agentDescClientSignature is the schema descriptor for client_signature field.
	agentDescClientSignature := agentFields[1].Descriptor()
	// agent.ClientSignatureValidator is a validator for the "client_signature" field. It is called by the builders before save.
	agent.ClientSignatureValidator = agentDescClientSignature.Validators[0].(func(string) error)
	// agentDescOperatingSystem is the schema descriptor for operating_system field.
	agentDescOperatingSystem := agentFields[2].Descriptor()
	// agent.DefaultOperatingSystem holds the default value on creation for the operating_system field.
	agent.DefaultOperatingSystem = agentDescOperatingSystem.Default.(string)
	// agentDescToken is the schema descriptor for token field.
	agentDescToken := agentFields[4].Descriptor()
	// agent.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	agent.TokenValidator = agentDescToken.Validators[0].(func(string) error)
	// agentDescLastIpaddress is the schema descriptor for last_ipaddress field.
	agentDescLastIpaddress := agentFields[7].Descriptor()
	// agent.DefaultLastIpaddress holds the default value on creation for the last_ipaddress field.
	agent.DefaultLastIpaddress = agentDescLastIpaddress.Default.(string)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[9].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	agenterrorFields := schema.AgentError{}.Fields()
	_ = agenterrorFields
	// agenterrorDescMessage is the schema descriptor for message field.
	agenterrorDescMessage := agenterrorFields[1].Descriptor()
	// agenterror.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	agenterror.MessageValidator = agenterrorDescMessage.Validators[0].(func(string) error)
	// agenterrorDescContextJSON is the schema descriptor for context_json field.
	agenterrorDescContextJSON := agenterrorFields[2].Descriptor()
	// agenterror.DefaultContextJSON holds the default value on creation for the context_json field.
	agenterror.DefaultContextJSON = agenterrorDescContextJSON.Default.(string)
	// agenterrorDescRecordedAt is the schema descriptor for recorded_at field.
	agenterrorDescRecordedAt := agenterrorFields[3].Descriptor()
	// agenterror.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	agenterror.DefaultRecordedAt = agenterrorDescRecordedAt.Default.(func() time.Time)
	attackFields := schema.Attack{}.Fields()
	_ = attackFields
	// attackDescPosition is the schema descriptor for position field.
	attackDescPosition := attackFields[0].Descriptor()
	// attack.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	attack.PositionValidator = attackDescPosition.Validators[0].(func(int) error)
	// attackDescMask is the schema descriptor for mask field.
	attackDescMask := attackFields[3].Descriptor()
	// attack.DefaultMask holds the default value on creation for the mask field.
	attack.DefaultMask = attackDescMask.Default.(string)
	// attackDescCustomCharset1 is the schema descriptor for custom_charset_1 field.
	attackDescCustomCharset1 := attackFields[4].Descriptor()
	// attack.DefaultCustomCharset1 holds the default value on creation for the custom_charset_1 field.
	attack.DefaultCustomCharset1 = attackDescCustomCharset1.Default.(string)
	// attackDescCustomCharset2 is the schema descriptor for custom_charset_2 field.
	attackDescCustomCharset2 := attackFields[5].Descriptor()
	// attack.DefaultCustomCharset2 holds the default value on creation for the custom_charset_2 field.
	attack.DefaultCustomCharset2 = attackDescCustomCharset2.Default.(string)
	// attackDescCustomCharset3 is the schema descriptor for custom_charset_3 field.
	attackDescCustomCharset3 := attackFields[6].Descriptor()
	// attack.DefaultCustomCharset3 holds the default value on creation for the custom_charset_3 field.
	attack.DefaultCustomCharset3 = attackDescCustomCharset3.Default.(string)
	// attackDescCustomCharset4 is the schema descriptor for custom_charset_4 field.
	attackDescCustomCharset4 := attackFields[7].Descriptor()
	// attack.DefaultCustomCharset4 holds the default value on creation for the custom_charset_4 field.
	attack.DefaultCustomCharset4 = attackDescCustomCharset4.Default.(string)
	// attackDescIncrementMode is the schema descriptor for increment_mode field.
	attackDescIncrementMode := attackFields[8].Descriptor()
	// attack.DefaultIncrementMode holds the default value on creation for the increment_mode field.
	attack.DefaultIncrementMode = attackDescIncrementMode.Default.(bool)
	// attackDescIncrementMinimum is the schema descriptor for increment_minimum field.
	attackDescIncrementMinimum := attackFields[9].Descriptor()
	// attack.DefaultIncrementMinimum holds the default value on creation for the increment_minimum field.
	attack.DefaultIncrementMinimum = attackDescIncrementMinimum.Default.(int)
	// attackDescIncrementMaximum is the schema descriptor for increment_maximum field.
	attackDescIncrementMaximum := attackFields[10].Descriptor()
	// attack.DefaultIncrementMaximum holds the default value on creation for the increment_maximum field.
	attack.DefaultIncrementMaximum = attackDescIncrementMaximum.Default.(int)
	// attack.IncrementMaximumValidator is a validator for the "increment_maximum" field. It is called by the builders before save.
	attack.IncrementMaximumValidator = attackDescIncrementMaximum.Validators[0].(func(int) error)
	// attackDescWorkloadProfile is the schema descriptor for workload_profile field.
	attackDescWorkloadProfile := attackFields[11].Descriptor()
	// attack.DefaultWorkloadProfile holds the default value on creation for the workload_profile field.
	attack.DefaultWorkloadProfile = attackDescWorkloadProfile.Default.(int)
	// attack.WorkloadProfileValidator is a validator for the "workload_profile" field. It is called by the builders before save.
	attack.WorkloadProfileValidator = func() func(int) error {
		validators := attackDescWorkloadProfile.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(workload_profile int) error {
			for _, fn := range fns {
				if err := fn(workload_profile); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attackDescOptimized is the schema descriptor for optimized field.
	attackDescOptimized := attackFields[12].Descriptor()
	// attack.DefaultOptimized holds the default value on creation for the optimized field.
	attack.DefaultOptimized = attackDescOptimized.Default.(bool)
	// attackDescDisableMarkov is the schema descriptor for disable_markov field.
	attackDescDisableMarkov := attackFields[13].Descriptor()
	// attack.DefaultDisableMarkov holds the default value on creation for the disable_markov field.
	attack.DefaultDisableMarkov = attackDescDisableMarkov.Default.(bool)
	// attackDescClassicMarkov is the schema descriptor for classic_markov field.
	attackDescClassicMarkov := attackFields[14].Descriptor()
	// attack.DefaultClassicMarkov holds the default value on creation for the classic_markov field.
	attack.DefaultClassicMarkov = attackDescClassicMarkov.Default.(bool)
	// attackDescMarkovThreshold is the schema descriptor for markov_threshold field.
	attackDescMarkovThreshold := attackFields[15].Descriptor()
	// attack.DefaultMarkovThreshold holds the default value on creation for the markov_threshold field.
	attack.DefaultMarkovThreshold = attackDescMarkovThreshold.Default.(int)
	// attackDescSlowCandidateGenerators is the schema descriptor for slow_candidate_generators field.
	attackDescSlowCandidateGenerators := attackFields[16].Descriptor()
	// attack.DefaultSlowCandidateGenerators holds the default value on creation for the slow_candidate_generators field.
	attack.DefaultSlowCandidateGenerators = attackDescSlowCandidateGenerators.Default.(bool)
	// attackDescLeftRule is the schema descriptor for left_rule field.
	attackDescLeftRule := attackFields[17].Descriptor()
	// attack.DefaultLeftRule holds the default value on creation for the left_rule field.
	attack.DefaultLeftRule = attackDescLeftRule.Default.(string)
	// attackDescRightRule is the schema descriptor for right_rule field.
	attackDescRightRule := attackFields[18].Descriptor()
	// attack.DefaultRightRule holds the default value on creation for the right_rule field.
	attack.DefaultRightRule = attackDescRightRule.Default.(string)
	// attackDescCreatedAt is the schema descriptor for created_at field.
	attackDescCreatedAt := attackFields[22].Descriptor()
	// attack.DefaultCreatedAt holds the default value on creation for the created_at field.
	attack.DefaultCreatedAt = attackDescCreatedAt.Default.(func() time.Time)
	// attackDescUpdatedAt is the schema descriptor for updated_at field.
	attackDescUpdatedAt := attackFields[23].Descriptor()
	// attack.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	attack.DefaultUpdatedAt = attackDescUpdatedAt.Default.(func() time.Time)
	// attack.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	attack.UpdateDefaultUpdatedAt = attackDescUpdatedAt.UpdateDefault.(func() time.Time)
	benchmarkFields := schema.Benchmark{}.Fields()
	_ = benchmarkFields
	// benchmarkDescDeviceIndex is the schema descriptor for device_index field.
	benchmarkDescDeviceIndex := benchmarkFields[1].Descriptor()
	// benchmark.DeviceIndexValidator is a validator for the "device_index" field. It is called by the builders before save.
	benchmark.DeviceIndexValidator = benchmarkDescDeviceIndex.Validators[0].(func(int) error)
	// benchmarkDescMeasuredAt is the schema descriptor for measured_at field.
	benchmarkDescMeasuredAt := benchmarkFields[4].Descriptor()
	// benchmark.DefaultMeasuredAt holds the default value on creation for the measured_at field.
	benchmark.DefaultMeasuredAt = benchmarkDescMeasuredAt.Default.(func() time.Time)
	campaignFields := schema.Campaign{}.Fields()
	_ = campaignFields
	// campaignDescName is the schema descriptor for name field.
	campaignDescName := campaignFields[0].Descriptor()
	// campaign.NameValidator is a validator for the "name" field. It is called by the builders before save.
	campaign.NameValidator = campaignDescName.Validators[0].(func(string) error)
	// campaignDescCreatedAt is the schema descriptor for created_at field.
	campaignDescCreatedAt := campaignFields[3].Descriptor()
	// campaign.DefaultCreatedAt holds the default value on creation for the created_at field.
	campaign.DefaultCreatedAt = campaignDescCreatedAt.Default.(func() time.Time)
	// campaignDescUpdatedAt is the schema descriptor for updated_at field.
	campaignDescUpdatedAt := campaignFields[4].Descriptor()
	// campaign.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campaign.DefaultUpdatedAt = campaignDescUpdatedAt.Default.(func() time.Time)
	// campaign.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campaign.UpdateDefaultUpdatedAt = campaignDescUpdatedAt.UpdateDefault.(func() time.Time)
	crackresultFields := schema.CrackResult{}.Fields()
	_ = crackresultFields
	// crackresultDescHashValue is the schema descriptor for hash_value field.
	crackresultDescHashValue := crackresultFields[0].Descriptor()
	// crackresult.HashValueValidator is a validator for the "hash_value" field. It is called by the builders before save.
	crackresult.HashValueValidator = crackresultDescHashValue.Validators[0].(func(string) error)
	// crackresultDescCrackedAt is the schema descriptor for cracked_at field.
	crackresultDescCrackedAt := crackresultFields[2].Descriptor()
	// crackresult.DefaultCrackedAt holds the default value on creation for the cracked_at field.
	crackresult.DefaultCrackedAt = crackresultDescCrackedAt.Default.(func() time.Time)
	hashitemFields := schema.HashItem{}.Fields()
	_ = hashitemFields
	// hashitemDescHashValue is the schema descriptor for hash_value field.
	hashitemDescHashValue := hashitemFields[0].Descriptor()
	// hashitem.HashValueValidator is a validator for the "hash_value" field. It is called by the builders before save.
	hashitem.HashValueValidator = hashitemDescHashValue.Validators[0].(func(string) error)
	// hashitemDescIsCracked is the schema descriptor for is_cracked field.
	hashitemDescIsCracked := hashitemFields[2].Descriptor()
	// hashitem.DefaultIsCracked holds the default value on creation for the is_cracked field.
	hashitem.DefaultIsCracked = hashitemDescIsCracked.Default.(bool)
	hashlistFields := schema.HashList{}.Fields()
	_ = hashlistFields
	// hashlistDescName is the schema descriptor for name field.
	hashlistDescName := hashlistFields[0].Descriptor()
	// hashlist.NameValidator is a validator for the "name" field. It is called by the builders before save.
	hashlist.NameValidator = hashlistDescName.Validators[0].(func(string) error)
	// hashlistDescUncrackedCount is the schema descriptor for uncracked_count field.
	hashlistDescUncrackedCount := hashlistFields[2].Descriptor()
	// hashlist.DefaultUncrackedCount holds the default value on creation for the uncracked_count field.
	hashlist.DefaultUncrackedCount = hashlistDescUncrackedCount.Default.(int)
	// hashlist.UncrackedCountValidator is a validator for the "uncracked_count" field. It is called by the builders before save.
	hashlist.UncrackedCountValidator = hashlistDescUncrackedCount.Validators[0].(func(int) error)
	// hashlistDescCreatedAt is the schema descriptor for created_at field.
	hashlistDescCreatedAt := hashlistFields[3].Descriptor()
	// hashlist.DefaultCreatedAt holds the default value on creation for the created_at field.
	hashlist.DefaultCreatedAt = hashlistDescCreatedAt.Default.(func() time.Time)
	hashcatstatusFields := schema.HashcatStatus{}.Fields()
	_ = hashcatstatusFields
	// hashcatstatusDescReceivedAt is the schema descriptor for received_at field.
	hashcatstatusDescReceivedAt := hashcatstatusFields[0].Descriptor()
	// hashcatstatus.DefaultReceivedAt holds the default value on creation for the received_at field.
	hashcatstatus.DefaultReceivedAt = hashcatstatusDescReceivedAt.Default.(func() time.Time)
	// hashcatstatusDescSession is the schema descriptor for session field.
	hashcatstatusDescSession := hashcatstatusFields[1].Descriptor()
	// hashcatstatus.DefaultSession holds the default value on creation for the session field.
	hashcatstatus.DefaultSession = hashcatstatusDescSession.Default.(string)
	// hashcatstatusDescTarget is the schema descriptor for target field.
	hashcatstatusDescTarget := hashcatstatusFields[3].Descriptor()
	// hashcatstatus.DefaultTarget holds the default value on creation for the target field.
	hashcatstatus.DefaultTarget = hashcatstatusDescTarget.Default.(string)
	// hashcatstatusDescRestorePoint is the schema descriptor for restore_point field.
	hashcatstatusDescRestorePoint := hashcatstatusFields[6].Descriptor()
	// hashcatstatus.DefaultRestorePoint holds the default value on creation for the restore_point field.
	hashcatstatus.DefaultRestorePoint = hashcatstatusDescRestorePoint.Default.(int64)
	// hashcatstatusDescRejected is the schema descriptor for rejected field.
	hashcatstatusDescRejected := hashcatstatusFields[9].Descriptor()
	// hashcatstatus.DefaultRejected holds the default value on creation for the rejected field.
	hashcatstatus.DefaultRejected = hashcatstatusDescRejected.Default.(int64)
	// hashcatstatusDescHashcatGuess is the schema descriptor for hashcat_guess field.
	hashcatstatusDescHashcatGuess := hashcatstatusFields[13].Descriptor()
	// hashcatstatus.DefaultHashcatGuess holds the default value on creation for the hashcat_guess field.
	hashcatstatus.DefaultHashcatGuess = hashcatstatusDescHashcatGuess.Default.(string)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[0].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[1].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[2].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	resourceFields := schema.Resource{}.Fields()
	_ = resourceFields
	// resourceDescName is the schema descriptor for name field.
	resourceDescName := resourceFields[0].Descriptor()
	// resource.NameValidator is a validator for the "name" field. It is called by the builders before save.
	resource.NameValidator = resourceDescName.Validators[0].(func(string) error)
	// resourceDescFileHandle is the schema descriptor for file_handle field.
	resourceDescFileHandle := resourceFields[2].Descriptor()
	// resource.FileHandleValidator is a validator for the "file_handle" field. It is called by the builders before save.
	resource.FileHandleValidator = resourceDescFileHandle.Validators[0].(func(string) error)
	// resourceDescSensitive is the schema descriptor for sensitive field.
	resourceDescSensitive := resourceFields[4].Descriptor()
	// resource.DefaultSensitive holds the default value on creation for the sensitive field.
	resource.DefaultSensitive = resourceDescSensitive.Default.(bool)
	// resourceDescCreatedAt is the schema descriptor for created_at field.
	resourceDescCreatedAt := resourceFields[5].Descriptor()
	// resource.DefaultCreatedAt holds the default value on creation for the created_at field.
	resource.DefaultCreatedAt = resourceDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescKeyspaceOffset is the schema descriptor for keyspace_offset field.
	taskDescKeyspaceOffset := taskFields[1].Descriptor()
	// task.KeyspaceOffsetValidator is a validator for the "keyspace_offset" field. It is called by the builders before save.
	task.KeyspaceOffsetValidator = taskDescKeyspaceOffset.Validators[0].(func(int64) error)
	// taskDescKeyspaceLimit is the schema descriptor for keyspace_limit field.
	taskDescKeyspaceLimit := taskFields[2].Descriptor()
	// task.KeyspaceLimitValidator is a validator for the "keyspace_limit" field. It is called by the builders before save.
	task.KeyspaceLimitValidator = taskDescKeyspaceLimit.Validators[0].(func(int64) error)
	// taskDescActivityTimestamp is the schema descriptor for activity_timestamp field.
	taskDescActivityTimestamp := taskFields[4].Descriptor()
	// task.DefaultActivityTimestamp holds the default value on creation for the activity_timestamp field.
	task.DefaultActivityTimestamp = taskDescActivityTimestamp.Default.(func() time.Time)
	// task.UpdateDefaultActivityTimestamp holds the default value on update for the activity_timestamp field.
	task.UpdateDefaultActivityTimestamp = taskDescActivityTimestamp.UpdateDefault.(func() time.Time)
	// taskDescStale is the schema descriptor for stale field.
	taskDescStale := taskFields[5].Descriptor()
	// task.DefaultStale holds the default value on creation for the stale field.
	task.DefaultStale = taskDescStale.Default.(bool)
	// taskDescCancelRequested is the schema descriptor for cancel_requested field.
	taskDescCancelRequested := taskFields[6].Descriptor()
	// task.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	task.DefaultCancelRequested = taskDescCancelRequested.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[7].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
}
