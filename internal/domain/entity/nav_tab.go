package entity

// NavTab is one of the screens reachable from the bottom navigation.
type NavTab string

const (
	TabHome      NavTab = "home"
	TabHourly    NavTab = "hourly"
	TabDaily     NavTab = "daily"
	TabFavorites NavTab = "favorites"
	TabSettings  NavTab = "settings"
)

var NavTabs = []NavTab{TabHome, TabHourly, TabDaily, TabFavorites, TabSettings}

func (t NavTab) Valid() bool {
	for _, tab := range NavTabs {
		if tab == t {
			return true
		}
	}
	return false
}
