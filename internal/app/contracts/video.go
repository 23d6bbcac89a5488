package contracts

// VideoCredentialService derives the deterministic room id for a slot and
// mints the signed, time-bounded token scoped to that room.
type VideoCredentialService interface {
	RoomIDForSlot(slotID string) string
	MintCredential(roomID, uid, role string) (string, error)
}
