package http

import (
	"github-agent/internal/account"
	"github-agent/internal/credential"
	"github-agent/pkg/response"
)

// --- Request DTOs ---

type loginReq struct {
	Token string `json:"token" binding:"required"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() account.LoginInput {
	return account.LoginInput{Token: r.Token}
}

// --- Response DTOs ---

type userResp struct {
	Login     string `json:"login"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	HTMLURL   string `json:"html_url,omitempty"`
}

func newUserResp(u credential.User) userResp {
	return userResp{
		Login:     u.Login,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		HTMLURL:   u.HTMLURL,
	}
}

type loginResp struct {
	User userResp `json:"user"`
}

func (h *handler) newLoginResp(o account.LoginOutput) loginResp {
	return loginResp{User: newUserResp(o.User)}
}

type meResp struct {
	User       userResp          `json:"user"`
	TokenSetAt response.DateTime `json:"token_set_at"`
	Verified   bool              `json:"verified"`
}

func (h *handler) newMeResp(o account.MeOutput) meResp {
	return meResp{
		User:       newUserResp(o.User),
		TokenSetAt: response.DateTime(o.TokenSetAt),
		Verified:   o.Verified,
	}
}

type tokenURLResp struct {
	URL string `json:"url"`
}
