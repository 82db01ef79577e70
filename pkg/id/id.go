package id

import (
	"crypto/md5"
	"fmt"
	"io"

	"github.com/gofrs/uuid"
)

// GenTraceID new normal traceID
func GenTraceID() string {
	return GenUUIDString()
}

// TraceIDFrom new traceID from text
func TraceIDFrom(text string) string {
	return UUIDFromString(text)
}

// GenUUIDString new uuid
func GenUUIDString() string {
	return uuid.Must(uuid.NewV4()).String()
}

// UUIDFromString  new uuid string from string
func UUIDFromString(text string) string {
	h := md5.New()
	io.WriteString(h, text)
	sum := h.Sum(nil)
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.FromBytesOrNil(sum).String()
}

// ReservePositionID derives the ledger position id holding a user's
// reserve collateral for the given asset pair. The same pair always
// resolves to the same id.
func ReservePositionID(reserveAsset, debtAsset string) string {
	return UUIDFromString(fmt.Sprintf("%s-%s-reserveAsset", reserveAsset, debtAsset))
}

// DebtPositionID derives the ledger position id tracking a user's debt
// against the given reserve asset.
func DebtPositionID(reserveAsset, debtAsset string) string {
	return UUIDFromString(fmt.Sprintf("%s-%s-backedAsset", reserveAsset, debtAsset))
}
