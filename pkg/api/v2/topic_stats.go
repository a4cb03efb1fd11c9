package v2

type (
	DeduplicationStatus string
	SubscriptionType    string
)

const (
	DeduplicationStatusEnabled  DeduplicationStatus = "Enabled"
	DeduplicationStatusDisabled DeduplicationStatus = "Disabled"
	DeduplicationStatusFailed   DeduplicationStatus = "Failed"
	DeduplicationStatusRecover  DeduplicationStatus = "Recovering"
	DeduplicationStatusRemoving DeduplicationStatus = "Removing"

	SubscriptionTypeExclusive SubscriptionType = "Exclusive"
	SubscriptionTypeShared    SubscriptionType = "Shared"
	SubscriptionTypeFailover  SubscriptionType = "Failover"
	SubscriptionTypeKeyShared SubscriptionType = "Key_Shared"
)

// TopicStats is the live state of a single (non-partitioned, or one
// partition of a partitioned) persistent topic as reported by the broker
// that owns it. Every field is server-produced.
type TopicStats struct {
	MsgRateIn        float64 `json:"msgRateIn"`
	MsgThroughputIn  float64 `json:"msgThroughputIn"`
	MsgRateOut       float64 `json:"msgRateOut"`
	MsgThroughputOut float64 `json:"msgThroughputOut"`

	BytesInCounter  int64 `json:"bytesInCounter"`
	MsgInCounter    int64 `json:"msgInCounter"`
	BytesOutCounter int64 `json:"bytesOutCounter"`
	MsgOutCounter   int64 `json:"msgOutCounter"`

	AverageMsgSize    float64 `json:"averageMsgSize"`
	MsgChunkPublished bool    `json:"msgChunkPublished"`
	StorageSize       int64   `json:"storageSize"`
	BacklogSize       int64   `json:"backlogSize"`

	PublishRateLimitedTimes          int64 `json:"publishRateLimitedTimes"`
	EarliestMsgPublishTimeInBacklogs int64 `json:"earliestMsgPublishTimeInBacklogs"`

	OffloadedStorageSize        int64 `json:"offloadedStorageSize"`
	LastOffloadLedgerID         int64 `json:"lastOffloadLedgerId"`
	LastOffloadSuccessTimeStamp int64 `json:"lastOffloadSuccessTimeStamp"`
	LastOffloadFailureTimeStamp int64 `json:"lastOffloadFailureTimeStamp"`

	WaitingPublishers int                          `json:"waitingPublishers"`
	Publishers        []PublisherStats             `json:"publishers"`
	Subscriptions     map[string]SubscriptionStats `json:"subscriptions"`
	Replication       map[string]ReplicatorStats   `json:"replication"`

	DeduplicationStatus DeduplicationStatus `json:"deduplicationStatus,omitempty"`

	NonContiguousDeletedMessagesRanges               int `json:"nonContiguousDeletedMessagesRanges"`
	NonContiguousDeletedMessagesRangesSerializedSize int `json:"nonContiguousDeletedMessagesRangesSerializedSize"`

	// transaction buffer counters, zero when transactions are disabled
	OngoingTxnCount   int64 `json:"ongoingTxnCount"`
	AbortedTxnCount   int64 `json:"abortedTxnCount"`
	CommittedTxnCount int64 `json:"committedTxnCount"`

	Compaction CompactionStats `json:"compaction"`

	OwnerBroker string `json:"ownerBroker,omitempty"`
	TopicEpoch  *int64 `json:"topicEpoch,omitempty"`
}

type CompactionStats struct {
	LastCompactionRemovedEventCount   int64 `json:"lastCompactionRemovedEventCount"`
	LastCompactionSucceedTimestamp    int64 `json:"lastCompactionSucceedTimestamp"`
	LastCompactionFailedTimestamp     int64 `json:"lastCompactionFailedTimestamp"`
	LastCompactionDurationTimeInMills int64 `json:"lastCompactionDurationTimeInMills"`
}

type PublisherStats struct {
	ProducerID   int64  `json:"producerId"`
	ProducerName string `json:"producerName"`

	MsgRateIn          float64 `json:"msgRateIn"`
	MsgThroughputIn    float64 `json:"msgThroughputIn"`
	AverageMsgSize     float64 `json:"averageMsgSize"`
	ChunkedMessageRate float64 `json:"chunkedMessageRate"`

	AccessMode              string `json:"accessMode,omitempty"`
	SupportsPartialProducer bool   `json:"supportsPartialProducer"`

	Address        string            `json:"address,omitempty"`
	ConnectedSince string            `json:"connectedSince,omitempty"`
	ClientVersion  string            `json:"clientVersion,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type SubscriptionStats struct {
	MsgRateOut         float64 `json:"msgRateOut"`
	MsgThroughputOut   float64 `json:"msgThroughputOut"`
	BytesOutCounter    int64   `json:"bytesOutCounter"`
	MsgOutCounter      int64   `json:"msgOutCounter"`
	MsgRateRedeliver   float64 `json:"msgRateRedeliver"`
	MsgRateExpired     float64 `json:"msgRateExpired"`
	ChunkedMessageRate int     `json:"chunkedMessageRate"`

	MsgBacklog                      int64 `json:"msgBacklog"`
	MsgBacklogNoDelayed             int64 `json:"msgBacklogNoDelayed"`
	BacklogSize                     int64 `json:"backlogSize"`
	EarliestMsgPublishTimeInBacklog int64 `json:"earliestMsgPublishTimeInBacklog"`
	MsgDelayed                      int64 `json:"msgDelayed"`
	UnackedMessages                 int64 `json:"unackedMessages"`
	TotalMsgExpired                 int64 `json:"totalMsgExpired"`

	BlockedSubscriptionOnUnackedMsgs bool `json:"blockedSubscriptionOnUnackedMsgs"`

	Type               SubscriptionType `json:"type,omitempty"`
	ActiveConsumerName string           `json:"activeConsumerName,omitempty"`

	LastExpireTimestamp             int64 `json:"lastExpireTimestamp"`
	LastConsumedFlowTimestamp       int64 `json:"lastConsumedFlowTimestamp"`
	LastConsumedTimestamp           int64 `json:"lastConsumedTimestamp"`
	LastAckedTimestamp              int64 `json:"lastAckedTimestamp"`
	LastMarkDeleteAdvancedTimestamp int64 `json:"lastMarkDeleteAdvancedTimestamp"`

	Consumers []ConsumerStats `json:"consumers"`

	IsDurable               bool `json:"isDurable"`
	IsReplicated            bool `json:"isReplicated"`
	AllowOutOfOrderDelivery bool `json:"allowOutOfOrderDelivery"`

	SubscriptionProperties map[string]string `json:"subscriptionProperties,omitempty"`
}

type ConsumerStats struct {
	ConsumerName string `json:"consumerName"`

	MsgRateOut         float64 `json:"msgRateOut"`
	MsgThroughputOut   float64 `json:"msgThroughputOut"`
	BytesOutCounter    int64   `json:"bytesOutCounter"`
	MsgOutCounter      int64   `json:"msgOutCounter"`
	MsgRateRedeliver   float64 `json:"msgRateRedeliver"`
	ChunkedMessageRate float64 `json:"chunkedMessageRate"`

	AvailablePermits             int     `json:"availablePermits"`
	UnackedMessages              int     `json:"unackedMessages"`
	AvgMessagesPerEntry          int     `json:"avgMessagesPerEntry"`
	BlockedConsumerOnUnackedMsgs bool    `json:"blockedConsumerOnUnackedMsgs"`
	ReadPositionWhenJoining      string  `json:"readPositionWhenJoining,omitempty"`
	MessageAckRate               float64 `json:"messageAckRate"`

	LastAckedTimestamp    int64 `json:"lastAckedTimestamp"`
	LastConsumedTimestamp int64 `json:"lastConsumedTimestamp"`

	Address        string            `json:"address,omitempty"`
	ConnectedSince string            `json:"connectedSince,omitempty"`
	ClientVersion  string            `json:"clientVersion,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

type ReplicatorStats struct {
	MsgRateIn        float64 `json:"msgRateIn"`
	MsgThroughputIn  float64 `json:"msgThroughputIn"`
	MsgRateOut       float64 `json:"msgRateOut"`
	MsgThroughputOut float64 `json:"msgThroughputOut"`
	MsgRateExpired   float64 `json:"msgRateExpired"`

	ReplicationBacklog        int64 `json:"replicationBacklog"`
	Connected                 bool  `json:"connected"`
	ReplicationDelayInSeconds int64 `json:"replicationDelayInSeconds"`

	InboundConnection      string `json:"inboundConnection,omitempty"`
	InboundConnectedSince  string `json:"inboundConnectedSince,omitempty"`
	OutboundConnection     string `json:"outboundConnection,omitempty"`
	OutboundConnectedSince string `json:"outboundConnectedSince,omitempty"`
}
