package vehicles

// IsOwner reports whether the caller may read or mutate a vehicle owned by
// resourceOwnerID. Kept as a separate policy point so ownership rules can
// change without touching the service control flow.
func IsOwner(resourceOwnerID, callerID int64) bool {
	return resourceOwnerID == callerID
}
