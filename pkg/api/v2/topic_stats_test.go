package v2

import (
	"encoding/json"
	"testing"
)

// captured from a 3.x standalone broker with one producer and one consumer
const topicStatsFixture = `{
  "msgRateIn": 12.5,
  "msgThroughputIn": 1280.25,
  "msgRateOut": 10.0,
  "msgThroughputOut": 1024.0,
  "bytesInCounter": 65536,
  "msgInCounter": 640,
  "bytesOutCounter": 32768,
  "msgOutCounter": 320,
  "averageMsgSize": 102.4,
  "msgChunkPublished": false,
  "storageSize": 70000,
  "backlogSize": 4096,
  "publishRateLimitedTimes": 0,
  "earliestMsgPublishTimeInBacklogs": 0,
  "offloadedStorageSize": 0,
  "lastOffloadLedgerId": 0,
  "lastOffloadSuccessTimeStamp": 0,
  "lastOffloadFailureTimeStamp": 0,
  "waitingPublishers": 0,
  "publishers": [
    {
      "accessMode": "Shared",
      "msgRateIn": 12.5,
      "msgThroughputIn": 1280.25,
      "averageMsgSize": 102.4,
      "chunkedMessageRate": 0.0,
      "producerId": 0,
      "supportsPartialProducer": false,
      "producerName": "standalone-0-3",
      "address": "/127.0.0.1:50012",
      "connectedSince": "2024-01-10T10:00:00.000Z",
      "clientVersion": "Pulsar-Java-v3.1.0",
      "metadata": {}
    }
  ],
  "subscriptions": {
    "sub": {
      "msgRateOut": 10.0,
      "msgThroughputOut": 1024.0,
      "bytesOutCounter": 32768,
      "msgOutCounter": 320,
      "msgRateRedeliver": 0.0,
      "chunkedMessageRate": 0,
      "msgBacklog": 40,
      "backlogSize": 4096,
      "earliestMsgPublishTimeInBacklog": 0,
      "msgBacklogNoDelayed": 40,
      "blockedSubscriptionOnUnackedMsgs": false,
      "msgDelayed": 0,
      "unackedMessages": 2,
      "type": "Exclusive",
      "activeConsumerName": "c1",
      "msgRateExpired": 0.0,
      "totalMsgExpired": 0,
      "lastExpireTimestamp": 0,
      "lastConsumedFlowTimestamp": 1704880800000,
      "lastConsumedTimestamp": 1704880800100,
      "lastAckedTimestamp": 1704880800200,
      "lastMarkDeleteAdvancedTimestamp": 1704880800200,
      "consumers": [
        {
          "msgRateOut": 10.0,
          "msgThroughputOut": 1024.0,
          "bytesOutCounter": 32768,
          "msgOutCounter": 320,
          "msgRateRedeliver": 0.0,
          "chunkedMessageRate": 0.0,
          "consumerName": "c1",
          "availablePermits": 998,
          "unackedMessages": 2,
          "avgMessagesPerEntry": 1,
          "blockedConsumerOnUnackedMsgs": false,
          "lastAckedTimestamp": 1704880800200,
          "lastConsumedTimestamp": 1704880800100,
          "address": "/127.0.0.1:50013",
          "connectedSince": "2024-01-10T10:00:01.000Z",
          "clientVersion": "Pulsar-Java-v3.1.0",
          "metadata": {"app": "orders"}
        }
      ],
      "isDurable": true,
      "isReplicated": false,
      "allowOutOfOrderDelivery": false,
      "consumersAfterMarkDeletePosition": {},
      "nonContiguousDeletedMessagesRanges": 0,
      "nonContiguousDeletedMessagesRangesSerializedSize": 0,
      "subscriptionProperties": {}
    }
  },
  "replication": {},
  "deduplicationStatus": "Disabled",
  "nonContiguousDeletedMessagesRanges": 0,
  "nonContiguousDeletedMessagesRangesSerializedSize": 0,
  "compaction": {
    "lastCompactionRemovedEventCount": 7,
    "lastCompactionSucceedTimestamp": 1704880000000,
    "lastCompactionFailedTimestamp": 0,
    "lastCompactionDurationTimeInMills": 35
  },
  "ownerBroker": "localhost:8080",
  "topicEpoch": 0,
  "ongoingTxnCount": 1,
  "abortedTxnCount": 2,
  "committedTxnCount": 3
}`

func TestTopicStats_Decode(t *testing.T) {
	var stats TopicStats
	if err := json.Unmarshal([]byte(topicStatsFixture), &stats); err != nil {
		t.Fatalf("unexpected error decoding stats: %v", err)
	}

	if stats.MsgRateIn != 12.5 || stats.MsgThroughputOut != 1024.0 {
		t.Errorf("unexpected rates %v / %v", stats.MsgRateIn, stats.MsgThroughputOut)
	}
	if stats.MsgInCounter != 640 || stats.BytesOutCounter != 32768 {
		t.Errorf("unexpected counters %v / %v", stats.MsgInCounter, stats.BytesOutCounter)
	}
	if stats.BacklogSize != 4096 {
		t.Errorf("expected backlog size 4096 but got %v", stats.BacklogSize)
	}
	if stats.DeduplicationStatus != DeduplicationStatusDisabled {
		t.Errorf("unexpected deduplication status %v", stats.DeduplicationStatus)
	}
	if stats.OwnerBroker != "localhost:8080" {
		t.Errorf("unexpected owner broker %v", stats.OwnerBroker)
	}
	if stats.OngoingTxnCount != 1 || stats.AbortedTxnCount != 2 || stats.CommittedTxnCount != 3 {
		t.Errorf("unexpected transaction counters %+v", stats)
	}
	if stats.TopicEpoch == nil || *stats.TopicEpoch != 0 {
		t.Errorf("expected topic epoch 0 but got %v", stats.TopicEpoch)
	}

	expectedCompaction := CompactionStats{
		LastCompactionRemovedEventCount:   7,
		LastCompactionSucceedTimestamp:    1704880000000,
		LastCompactionFailedTimestamp:     0,
		LastCompactionDurationTimeInMills: 35,
	}
	if stats.Compaction != expectedCompaction {
		t.Errorf("expected compaction %+v but got %+v", expectedCompaction, stats.Compaction)
	}

	if len(stats.Publishers) != 1 || stats.Publishers[0].ProducerName != "standalone-0-3" {
		t.Fatalf("unexpected publishers %+v", stats.Publishers)
	}

	sub, ok := stats.Subscriptions["sub"]
	if !ok {
		t.Fatalf("expected subscription sub in %v", stats.Subscriptions)
	}
	if sub.Type != SubscriptionTypeExclusive || sub.MsgBacklog != 40 || !sub.IsDurable {
		t.Errorf("unexpected subscription %+v", sub)
	}
	if len(sub.Consumers) != 1 || sub.Consumers[0].AvailablePermits != 998 {
		t.Errorf("unexpected consumers %+v", sub.Consumers)
	}
	if sub.Consumers[0].Metadata["app"] != "orders" {
		t.Errorf("unexpected consumer metadata %v", sub.Consumers[0].Metadata)
	}

	if stats.Replication == nil || len(stats.Replication) != 0 {
		t.Errorf("expected empty replication map but got %v", stats.Replication)
	}
}

func TestTopicStats_EncodesCamelCase(t *testing.T) {
	data, err := json.Marshal(&TopicStats{Compaction: CompactionStats{LastCompactionDurationTimeInMills: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{
		"msgRateIn", "msgThroughputIn", "msgRateOut", "msgThroughputOut",
		"bytesInCounter", "msgInCounter", "bytesOutCounter", "msgOutCounter",
		"backlogSize", "publishers", "subscriptions", "compaction",
		"ongoingTxnCount", "abortedTxnCount", "committedTxnCount",
	} {
		if _, ok := fields[name]; !ok {
			t.Errorf("expected field %v in %v", name, string(data))
		}
	}
}

func TestLookupData_Decode(t *testing.T) {
	var data LookupData
	body := `{"brokerUrl":"pulsar://broker-1:6650","httpUrl":"http://broker-1:8080","nativeUrl":"pulsar://broker-1:6650"}`
	if err := json.Unmarshal([]byte(body), &data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.BrokerURL != "pulsar://broker-1:6650" || data.HTTPURL != "http://broker-1:8080" {
		t.Errorf("unexpected lookup data %+v", data)
	}
	if data.BrokerURLTLS != "" || data.HTTPURLTLS != "" {
		t.Errorf("expected absent TLS listeners to decode empty, got %+v", data)
	}
}

func TestPersistentTopicName(t *testing.T) {
	name := PersistentTopicName("public", "default", "orders")
	if name != "persistent://public/default/orders" {
		t.Errorf("unexpected topic name %v", name)
	}

	if p := PartitionName("orders", 2); p != "orders-partition-2" {
		t.Errorf("unexpected partition name %v", p)
	}
}
