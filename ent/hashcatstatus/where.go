// Code generated by ent, DO NOT EDIT.

package hashcatstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldID, id))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldReceivedAt, v))
}

// Session applies equality check predicate on the "session" field. It's identical to SessionEQ.
func Session(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldSession, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v int) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldStatusCode, v))
}

// Target applies equality check predicate on the "target" field. It's identical to TargetEQ.
func Target(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldTarget, v))
}

// ProgressDone applies equality check predicate on the "progress_done" field. It's identical to ProgressDoneEQ.
func ProgressDone(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldProgressDone, v))
}

// ProgressTotal applies equality check predicate on the "progress_total" field. It's identical to ProgressTotalEQ.
func ProgressTotal(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldProgressTotal, v))
}

// RestorePoint applies equality check predicate on the "restore_point" field. It's identical to RestorePointEQ.
func RestorePoint(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldRestorePoint, v))
}

// Rejected applies equality check predicate on the "rejected" field. It's identical to RejectedEQ.
func Rejected(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldRejected, v))
}

// TimeStart applies equality check predicate on the "time_start" field. It's identical to TimeStartEQ.
func TimeStart(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldTimeStart, v))
}

// EstimatedStop applies equality check predicate on the "estimated_stop" field. It's identical to EstimatedStopEQ.
func EstimatedStop(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldEstimatedStop, v))
}

// HashcatGuess applies equality check predicate on the "hashcat_guess" field. It's identical to HashcatGuessEQ.
func HashcatGuess(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldHashcatGuess, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldReceivedAt, v))
}

// SessionEQ applies the EQ predicate on the "session" field.
func SessionEQ(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldSession, v))
}

// SessionNEQ applies the NEQ predicate on the "session" field.
func SessionNEQ(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldSession, v))
}

// SessionIn applies the In predicate on the "session" field.
func SessionIn(vs ...string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldSession, vs...))
}

// SessionNotIn applies the NotIn predicate on the "session" field.
func SessionNotIn(vs ...string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldSession, vs...))
}

// SessionGT applies the GT predicate on the "session" field.
func SessionGT(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldSession, v))
}

// SessionGTE applies the GTE predicate on the "session" field.
func SessionGTE(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldSession, v))
}

// SessionLT applies the LT predicate on the "session" field.
func SessionLT(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldSession, v))
}

// SessionLTE applies the LTE predicate on the "session" field.
func SessionLTE(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldSession, v))
}

// SessionContains applies the Contains predicate on the "session" field.
func SessionContains(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldContains(FieldSession, v))
}

// SessionHasPrefix applies the HasPrefix predicate on the "session" field.
func SessionHasPrefix(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldHasPrefix(FieldSession, v))
}

// SessionHasSuffix applies the HasSuffix predicate on the "session" field.
func SessionHasSuffix(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldHasSuffix(FieldSession, v))
}

// SessionIsNil applies the IsNil predicate on the "session" field.
func SessionIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldSession))
}

// SessionNotNil applies the NotNil predicate on the "session" field.
func SessionNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldSession))
}

// SessionEqualFold applies the EqualFold predicate on the "session" field.
func SessionEqualFold(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEqualFold(FieldSession, v))
}

// SessionContainsFold applies the ContainsFold predicate on the "session" field.
func SessionContainsFold(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldContainsFold(FieldSession, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v int) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v int) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...int) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...int) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v int) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v int) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v int) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v int) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldStatusCode, v))
}

// TargetEQ applies the EQ predicate on the "target" field.
func TargetEQ(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldTarget, v))
}

// TargetNEQ applies the NEQ predicate on the "target" field.
func TargetNEQ(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldTarget, v))
}

// TargetIn applies the In predicate on the "target" field.
func TargetIn(vs ...string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldTarget, vs...))
}

// TargetNotIn applies the NotIn predicate on the "target" field.
func TargetNotIn(vs ...string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldTarget, vs...))
}

// TargetGT applies the GT predicate on the "target" field.
func TargetGT(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldTarget, v))
}

// TargetGTE applies the GTE predicate on the "target" field.
func TargetGTE(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldTarget, v))
}

// TargetLT applies the LT predicate on the "target" field.
func TargetLT(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldTarget, v))
}

// TargetLTE applies the LTE predicate on the "target" field.
func TargetLTE(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldTarget, v))
}

// TargetContains applies the Contains predicate on the "target" field.
func TargetContains(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldContains(FieldTarget, v))
}

// TargetHasPrefix applies the HasPrefix predicate on the "target" field.
func TargetHasPrefix(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldHasPrefix(FieldTarget, v))
}

// TargetHasSuffix applies the HasSuffix predicate on the "target" field.
func TargetHasSuffix(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldHasSuffix(FieldTarget, v))
}

// TargetIsNil applies the IsNil predicate on the "target" field.
func TargetIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldTarget))
}

// TargetNotNil applies the NotNil predicate on the "target" field.
func TargetNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldTarget))
}

// TargetEqualFold applies the EqualFold predicate on the "target" field.
func TargetEqualFold(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEqualFold(FieldTarget, v))
}

// TargetContainsFold applies the ContainsFold predicate on the "target" field.
func TargetContainsFold(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldContainsFold(FieldTarget, v))
}

// ProgressDoneEQ applies the EQ predicate on the "progress_done" field.
func ProgressDoneEQ(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldProgressDone, v))
}

// ProgressDoneNEQ applies the NEQ predicate on the "progress_done" field.
func ProgressDoneNEQ(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldProgressDone, v))
}

// ProgressDoneIn applies the In predicate on the "progress_done" field.
func ProgressDoneIn(vs ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldProgressDone, vs...))
}

// ProgressDoneNotIn applies the NotIn predicate on the "progress_done" field.
func ProgressDoneNotIn(vs ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldProgressDone, vs...))
}

// ProgressDoneGT applies the GT predicate on the "progress_done" field.
func ProgressDoneGT(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldProgressDone, v))
}

// ProgressDoneGTE applies the GTE predicate on the "progress_done" field.
func ProgressDoneGTE(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldProgressDone, v))
}

// ProgressDoneLT applies the LT predicate on the "progress_done" field.
func ProgressDoneLT(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldProgressDone, v))
}

// ProgressDoneLTE applies the LTE predicate on the "progress_done" field.
func ProgressDoneLTE(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldProgressDone, v))
}

// ProgressTotalEQ applies the EQ predicate on the "progress_total" field.
func ProgressTotalEQ(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldProgressTotal, v))
}

// ProgressTotalNEQ applies the NEQ predicate on the "progress_total" field.
func ProgressTotalNEQ(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldProgressTotal, v))
}

// ProgressTotalIn applies the In predicate on the "progress_total" field.
func ProgressTotalIn(vs ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldProgressTotal, vs...))
}

// ProgressTotalNotIn applies the NotIn predicate on the "progress_total" field.
func ProgressTotalNotIn(vs ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldProgressTotal, vs...))
}

// ProgressTotalGT applies the GT predicate on the "progress_total" field.
func ProgressTotalGT(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldProgressTotal, v))
}

// ProgressTotalGTE applies the GTE predicate on the "progress_total" field.
func ProgressTotalGTE(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldProgressTotal, v))
}

// ProgressTotalLT applies the LT predicate on the "progress_total" field.
func ProgressTotalLT(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldProgressTotal, v))
}

// ProgressTotalLTE applies the LTE predicate on the "progress_total" field.
func ProgressTotalLTE(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldProgressTotal, v))
}

// RestorePointEQ applies the EQ predicate on the "restore_point" field.
func RestorePointEQ(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldRestorePoint, v))
}

// RestorePointNEQ applies the NEQ predicate on the "restore_point" field.
func RestorePointNEQ(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldRestorePoint, v))
}

// RestorePointIn applies the In predicate on the "restore_point" field.
func RestorePointIn(vs ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldRestorePoint, vs...))
}

// RestorePointNotIn applies the NotIn predicate on the "restore_point" field.
func RestorePointNotIn(vs ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldRestorePoint, vs...))
}

// RestorePointGT applies the GT predicate on the "restore_point" field.
func RestorePointGT(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldRestorePoint, v))
}

// RestorePointGTE applies the GTE predicate on the "restore_point" field.
func RestorePointGTE(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldRestorePoint, v))
}

// RestorePointLT applies the LT predicate on the "restore_point" field.
func RestorePointLT(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldRestorePoint, v))
}

// RestorePointLTE applies the LTE predicate on the "restore_point" field.
func RestorePointLTE(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldRestorePoint, v))
}

// RestorePointIsNil applies the IsNil predicate on the "restore_point" field.
func RestorePointIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldRestorePoint))
}

// RestorePointNotNil applies the NotNil predicate on the "restore_point" field.
func RestorePointNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldRestorePoint))
}

// RecoveredHashesIsNil applies the IsNil predicate on the "recovered_hashes" field.
func RecoveredHashesIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldRecoveredHashes))
}

// RecoveredHashesNotNil applies the NotNil predicate on the "recovered_hashes" field.
func RecoveredHashesNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldRecoveredHashes))
}

// RecoveredSaltsIsNil applies the IsNil predicate on the "recovered_salts" field.
func RecoveredSaltsIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldRecoveredSalts))
}

// RecoveredSaltsNotNil applies the NotNil predicate on the "recovered_salts" field.
func RecoveredSaltsNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldRecoveredSalts))
}

// RejectedEQ applies the EQ predicate on the "rejected" field.
func RejectedEQ(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldRejected, v))
}

// RejectedNEQ applies the NEQ predicate on the "rejected" field.
func RejectedNEQ(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldRejected, v))
}

// RejectedIn applies the In predicate on the "rejected" field.
func RejectedIn(vs ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldRejected, vs...))
}

// RejectedNotIn applies the NotIn predicate on the "rejected" field.
func RejectedNotIn(vs ...int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldRejected, vs...))
}

// RejectedGT applies the GT predicate on the "rejected" field.
func RejectedGT(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldRejected, v))
}

// RejectedGTE applies the GTE predicate on the "rejected" field.
func RejectedGTE(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldRejected, v))
}

// RejectedLT applies the LT predicate on the "rejected" field.
func RejectedLT(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldRejected, v))
}

// RejectedLTE applies the LTE predicate on the "rejected" field.
func RejectedLTE(v int64) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldRejected, v))
}

// RejectedIsNil applies the IsNil predicate on the "rejected" field.
func RejectedIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldRejected))
}

// RejectedNotNil applies the NotNil predicate on the "rejected" field.
func RejectedNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldRejected))
}

// DevicesIsNil applies the IsNil predicate on the "devices" field.
func DevicesIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldDevices))
}

// DevicesNotNil applies the NotNil predicate on the "devices" field.
func DevicesNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldDevices))
}

// TimeStartEQ applies the EQ predicate on the "time_start" field.
func TimeStartEQ(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldTimeStart, v))
}

// TimeStartNEQ applies the NEQ predicate on the "time_start" field.
func TimeStartNEQ(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldTimeStart, v))
}

// TimeStartIn applies the In predicate on the "time_start" field.
func TimeStartIn(vs ...time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldTimeStart, vs...))
}

// TimeStartNotIn applies the NotIn predicate on the "time_start" field.
func TimeStartNotIn(vs ...time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldTimeStart, vs...))
}

// TimeStartGT applies the GT predicate on the "time_start" field.
func TimeStartGT(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldTimeStart, v))
}

// TimeStartGTE applies the GTE predicate on the "time_start" field.
func TimeStartGTE(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldTimeStart, v))
}

// TimeStartLT applies the LT predicate on the "time_start" field.
func TimeStartLT(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldTimeStart, v))
}

// TimeStartLTE applies the LTE predicate on the "time_start" field.
func TimeStartLTE(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldTimeStart, v))
}

// TimeStartIsNil applies the IsNil predicate on the "time_start" field.
func TimeStartIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldTimeStart))
}

// TimeStartNotNil applies the NotNil predicate on the "time_start" field.
func TimeStartNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldTimeStart))
}

// EstimatedStopEQ applies the EQ predicate on the "estimated_stop" field.
func EstimatedStopEQ(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldEstimatedStop, v))
}

// EstimatedStopNEQ applies the NEQ predicate on the "estimated_stop" field.
func EstimatedStopNEQ(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldEstimatedStop, v))
}

// EstimatedStopIn applies the In predicate on the "estimated_stop" field.
func EstimatedStopIn(vs ...time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldEstimatedStop, vs...))
}

// EstimatedStopNotIn applies the NotIn predicate on the "estimated_stop" field.
func EstimatedStopNotIn(vs ...time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldEstimatedStop, vs...))
}

// EstimatedStopGT applies the GT predicate on the "estimated_stop" field.
func EstimatedStopGT(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldEstimatedStop, v))
}

// EstimatedStopGTE applies the GTE predicate on the "estimated_stop" field.
func EstimatedStopGTE(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldEstimatedStop, v))
}

// EstimatedStopLT applies the LT predicate on the "estimated_stop" field.
func EstimatedStopLT(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldEstimatedStop, v))
}

// EstimatedStopLTE applies the LTE predicate on the "estimated_stop" field.
func EstimatedStopLTE(v time.Time) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldEstimatedStop, v))
}

// EstimatedStopIsNil applies the IsNil predicate on the "estimated_stop" field.
func EstimatedStopIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldEstimatedStop))
}

// EstimatedStopNotNil applies the NotNil predicate on the "estimated_stop" field.
func EstimatedStopNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldEstimatedStop))
}

// HashcatGuessEQ applies the EQ predicate on the "hashcat_guess" field.
func HashcatGuessEQ(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEQ(FieldHashcatGuess, v))
}

// HashcatGuessNEQ applies the NEQ predicate on the "hashcat_guess" field.
func HashcatGuessNEQ(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNEQ(FieldHashcatGuess, v))
}

// HashcatGuessIn applies the In predicate on the "hashcat_guess" field.
func HashcatGuessIn(vs ...string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIn(FieldHashcatGuess, vs...))
}

// HashcatGuessNotIn applies the NotIn predicate on the "hashcat_guess" field.
func HashcatGuessNotIn(vs ...string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotIn(FieldHashcatGuess, vs...))
}

// HashcatGuessGT applies the GT predicate on the "hashcat_guess" field.
func HashcatGuessGT(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGT(FieldHashcatGuess, v))
}

// HashcatGuessGTE applies the GTE predicate on the "hashcat_guess" field.
func HashcatGuessGTE(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldGTE(FieldHashcatGuess, v))
}

// HashcatGuessLT applies the LT predicate on the "hashcat_guess" field.
func HashcatGuessLT(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLT(FieldHashcatGuess, v))
}

// HashcatGuessLTE applies the LTE predicate on the "hashcat_guess" field.
func HashcatGuessLTE(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldLTE(FieldHashcatGuess, v))
}

// HashcatGuessContains applies the Contains predicate on the "hashcat_guess" field.
func HashcatGuessContains(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldContains(FieldHashcatGuess, v))
}

// HashcatGuessHasPrefix applies the HasPrefix predicate on the "hashcat_guess" field.
func HashcatGuessHasPrefix(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldHasPrefix(FieldHashcatGuess, v))
}

// HashcatGuessHasSuffix applies the HasSuffix predicate on the "hashcat_guess" field.
func HashcatGuessHasSuffix(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldHasSuffix(FieldHashcatGuess, v))
}

// HashcatGuessIsNil applies the IsNil predicate on the "hashcat_guess" field.
func HashcatGuessIsNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldIsNull(FieldHashcatGuess))
}

// HashcatGuessNotNil applies the NotNil predicate on the "hashcat_guess" field.
func HashcatGuessNotNil() predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldNotNull(FieldHashcatGuess))
}

// HashcatGuessEqualFold applies the EqualFold predicate on the "hashcat_guess" field.
func HashcatGuessEqualFold(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldEqualFold(FieldHashcatGuess, v))
}

// HashcatGuessContainsFold applies the ContainsFold predicate on the "hashcat_guess" field.
func HashcatGuessContainsFold(v string) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.FieldContainsFold(FieldHashcatGuess, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.HashcatStatus {
	return predicate.HashcatStatus(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.HashcatStatus {
	return predicate.HashcatStatus(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HashcatStatus) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HashcatStatus) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HashcatStatus) predicate.HashcatStatus {
	return predicate.HashcatStatus(sql.NotPredicates(p))
}
