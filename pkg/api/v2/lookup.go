package v2

// LookupData describes the listeners of the broker that currently serves a
// topic. A broker may not expose every listener; absent ones decode as "".
type LookupData struct {
	BrokerURL    string `json:"brokerUrl,omitempty"`
	BrokerURLTLS string `json:"brokerUrlTls,omitempty"`
	HTTPURL      string `json:"httpUrl,omitempty"`
	HTTPURLTLS   string `json:"httpUrlTls,omitempty"`
	NativeURL    string `json:"nativeUrl,omitempty"`
}
