package api

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
)

type Parameter map[string]string

func (p Parameter) Encode() string {
	var parameters []string
	for key, value := range p {
		parameters = append(parameters, key+"="+PercentEncode(value))
	}
	sort.Strings(parameters)
	return strings.Join(parameters, "&")
}

func PercentEncode(s string) string {
	s = url.QueryEscape(s)
	return strings.ReplaceAll(s, "+", "%20")
}

type userAgentOpt struct {
	agent string
}

func UserAgent(agent string) *userAgentOpt {
	return &userAgentOpt{agent: agent}
}

func (opt *userAgentOpt) Do(client defaultClient, req *http.Request) {
	req.Header.Set("User-Agent", opt.agent)
}
