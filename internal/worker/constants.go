package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStarting  = "Daily reward reset starting"
	LogMsgDailyResetCompleted = "Daily reward reset completed"
	LogMsgDailyResetFailed    = "Daily reward reset failed"
	LogMsgDailyResetStandby   = "Daily reward reset in standby"
	LogMsgDailyResetApproach  = "Daily reward reset scheduled"
)

// Log messages for energy restore worker operations
const (
	LogMsgEnergyRestoreStarting  = "Energy restore tick starting"
	LogMsgEnergyRestoreCompleted = "Energy restore tick completed"
	LogMsgEnergyRestoreFailed    = "Energy restore tick failed"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
