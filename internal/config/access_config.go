package config

type AccessLevel int

const (
	AccessPublic AccessLevel = iota // No participant header
	AccessActor                     // X-Participant-ID required
)

// RouteAccessConfig maps named HTTP routes to the access they require.
// Elevated-role checks happen in the services; this only decides whether the
// caller has to identify themselves. Unlisted routes default to AccessActor.
var RouteAccessConfig = map[string]AccessLevel{
	"health":  AccessPublic,
	"metrics": AccessPublic,

	"registrations.create": AccessActor,
	"tokens.redeem":        AccessActor,
	"tokens.issue":         AccessActor,

	"requests.submit":  AccessActor,
	"requests.pending": AccessActor,
	"requests.mine":    AccessActor,
	"requests.status":  AccessActor,
	"requests.assign":  AccessActor,
	"requests.approve": AccessActor,
	"requests.reject":  AccessActor,
	"requests.comment": AccessActor,

	"feedback.submit":  AccessActor,
	"feedback.pending": AccessActor,
	"feedback.reply":   AccessActor,

	"history.list": AccessActor,

	"participants.list":   AccessActor,
	"participants.get":    AccessActor,
	"participants.edit":   AccessActor,
	"participants.remove": AccessActor,
	"participants.role":   AccessActor,
}

// RouteAccess returns the access level for a route name.
func RouteAccess(name string) AccessLevel {
	if level, ok := RouteAccessConfig[name]; ok {
		return level
	}
	return AccessActor
}
