package console

// View is one of the four panels reachable from the sidebar.
type View string

const (
	ViewDashboard    View = "dashboard"
	ViewHistory      View = "history"
	ViewConfig       View = "config"
	ViewReservations View = "reservations"
)

// NavItem is a sidebar entry.
type NavItem struct {
	View  View   `json:"view"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var navItems = []NavItem{
	{ViewDashboard, "Dashboard", "/"},
	{ViewHistory, "Call History", "/history"},
	{ViewConfig, "Configuration", "/config"},
	{ViewReservations, "Reservations", "/reservations"},
}

// NavItems returns the sidebar entries in display order.
func NavItems() []NavItem {
	return append([]NavItem(nil), navItems...)
}

// ParseView resolves a view name. Unknown names fall back to the dashboard.
func ParseView(s string) (View, bool) {
	for _, n := range navItems {
		if string(n.View) == s {
			return n.View, true
		}
	}
	return ViewDashboard, false
}

func (v View) Label() string {
	for _, n := range navItems {
		if n.View == v {
			return n.Label
		}
	}
	return ""
}

// Path is the page route that renders v.
func (v View) Path() string {
	for _, n := range navItems {
		if n.View == v {
			return n.Path
		}
	}
	return "/"
}

// ConfigTab is a section of the configuration view.
type ConfigTab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var configTabs = []ConfigTab{
	{"greeting", "Greeting Script"},
	{"intents", "Intent Responses"},
	{"escalation", "Escalation Rules"},
	{"hours", "Business Hours"},
}

func ConfigTabs() []ConfigTab {
	return append([]ConfigTab(nil), configTabs...)
}

// ParseConfigTab returns the tab id, defaulting to the greeting tab.
func ParseConfigTab(s string) string {
	for _, t := range configTabs {
		if t.ID == s {
			return t.ID
		}
	}
	return configTabs[0].ID
}
