package handler

import "net/http"

// EndpointInfo describes one API endpoint
type EndpointInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// APIInfo describes the service and its endpoints
type APIInfo struct {
	URL       string                             `json:"url"`
	Version   string                             `json:"version"`
	Database  string                             `json:"database"`
	Endpoints map[string]map[string]EndpointInfo `json:"endpoints"`
}

// APIDescriptor is the body of GET /api
type APIDescriptor struct {
	Status string  `json:"status"`
	API    APIInfo `json:"api"`
}

// HandleAPIInfo handles GET /api
// @Summary Service descriptor
// @Tags info
// @Produce json
// @Success 200 {object} APIDescriptor
// @Router /api [get]
func HandleAPIInfo(baseURL string) http.HandlerFunc {
	descriptor := APIDescriptor{
		Status: APIStatusActive,
		API: APIInfo{
			URL:      baseURL,
			Version:  APIVersion,
			Database: APIDatabase,
			Endpoints: map[string]map[string]EndpointInfo{
				"oauth": {
					"callback": {Name: "/api/oauth/osu/callback", Description: "Handle osu! OAuth callback"},
					"refresh":  {Name: "/api/oauth/osu/refresh", Description: "Refresh osu! OAuth token"},
					"link":     {Name: "/api/oauth/osu/link/discord", Description: "Link Discord account with osu!"},
					"status":   {Name: "/api/oauth/osu/link/discord/{id}", Description: "Get or remove the osu! link of a Discord account"},
				},
				"discord": {
					"search": {Name: "/api/discord/search-user", Description: "Search for Discord user by username"},
				},
			},
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, descriptor)
	}
}
