package state

import "encoding/binary"

// Storage namespaces. The layout matches cw-storage-plus so a store dump
// lines up with what the original host would hold.
const (
	NamespaceState         = "state"
	NamespaceContractInfo  = "contract_info"
	NamespacePurchaseList  = "purchase_list"
	NamespaceChainSettings = "chain_settings"
)

// mapPrefix returns len(namespace) as uint16 big-endian followed by the
// namespace bytes.
func mapPrefix(namespace string) []byte {
	out := make([]byte, 2+len(namespace))
	binary.BigEndian.PutUint16(out, uint16(len(namespace)))
	copy(out[2:], namespace)
	return out
}

// mapKey returns the full storage key for k under namespace.
func mapKey(namespace, k string) []byte {
	p := mapPrefix(namespace)
	return append(p, k...)
}
