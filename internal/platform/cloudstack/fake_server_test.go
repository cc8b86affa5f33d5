package cloudstack

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/imamik/csgroup/internal/config"
)

const (
	testAPIKey = "test-key"
	testSecret = "test-secret"
)

var fakeRetryOnce = config.Retry{MaxAttempts: 1, InitialDelay: time.Millisecond}

// fakeCloudStack is an in-memory CloudStack API that verifies request signatures.
type fakeCloudStack struct {
	server *httptest.Server

	mu       sync.Mutex
	groups   []InstanceGroup
	domains  []Domain
	accounts []Account
	projects []Project
	calls    map[string]int
	methods  map[string]string
	requests []map[string]string

	// handlers override the built-in behaviour for a command.
	handlers map[string]func(w http.ResponseWriter, params map[string]string)
}

func newFakeCloudStack(t *testing.T) *fakeCloudStack {
	t.Helper()
	f := &fakeCloudStack{
		calls:    make(map[string]int),
		methods:  make(map[string]string),
		handlers: make(map[string]func(http.ResponseWriter, map[string]string)),
	}
	f.server = httptest.NewServer(f)
	t.Cleanup(f.server.Close)
	return f
}

// client returns a RealClient pointed at the fake with fast retries.
func (f *fakeCloudStack) client(opts ...ClientOption) *RealClient {
	base := []ClientOption{
		WithRetry(config.Retry{MaxAttempts: 3, InitialDelay: time.Millisecond}),
		WithTimeout(5 * time.Second),
	}
	return NewRealClient(f.server.URL, testAPIKey, testSecret, append(base, opts...)...)
}

func (f *fakeCloudStack) handle(command string, h func(w http.ResponseWriter, params map[string]string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[command] = h
}

func (f *fakeCloudStack) callCount(command string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[command]
}

func (f *fakeCloudStack) addGroups(groups ...InstanceGroup) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups = append(f.groups, groups...)
}

func (f *fakeCloudStack) groupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.groups)
}

func (f *fakeCloudStack) lastRequest() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

func (f *fakeCloudStack) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	values := r.Form
	command := values.Get("command")

	unsigned := make(map[string][]string, len(values))
	for k, v := range values {
		if k != "signature" {
			unsigned[k] = v
		}
	}
	if values.Get("apikey") != testAPIKey || sign(unsigned, testSecret) != values.Get("signature") {
		writeEnvelope(w, http.StatusUnauthorized, command, map[string]any{
			"errorcode": 401,
			"errortext": "unable to verify user credentials and/or request signature",
		})
		return
	}

	params := make(map[string]string, len(values))
	for k := range values {
		params[k] = values.Get(k)
	}

	f.mu.Lock()
	f.calls[command]++
	f.methods[command] = r.Method
	f.requests = append(f.requests, params)
	h := f.handlers[command]
	f.mu.Unlock()

	if h != nil {
		h(w, params)
		return
	}

	switch command {
	case cmdListInstanceGroups:
		f.listInstanceGroups(w, params)
	case cmdCreateInstanceGroup:
		f.createInstanceGroup(w, params)
	case cmdDeleteInstanceGroup:
		f.deleteInstanceGroup(w, params)
	case cmdListDomains:
		f.mu.Lock()
		items := append([]Domain(nil), f.domains...)
		f.mu.Unlock()
		writeList(w, command, "domain", items, params)
	case cmdListAccounts:
		f.mu.Lock()
		var items []Account
		for _, a := range f.accounts {
			if a.Name == params["name"] && (params["domainid"] == "" || a.DomainID == params["domainid"]) {
				items = append(items, a)
			}
		}
		f.mu.Unlock()
		writeList(w, command, "account", items, params)
	case cmdListProjects:
		f.mu.Lock()
		var items []Project
		for _, p := range f.projects {
			if params["domainid"] != "" && p.DomainID != params["domainid"] {
				continue
			}
			if params["account"] != "" && p.Account != params["account"] {
				continue
			}
			items = append(items, p)
		}
		f.mu.Unlock()
		writeList(w, command, "project", items, params)
	default:
		writeEnvelope(w, http.StatusBadRequest, command, map[string]any{
			"errorcode": 432,
			"errortext": "The given command does not exist or it is not available for user",
		})
	}
}

func (f *fakeCloudStack) listInstanceGroups(w http.ResponseWriter, params map[string]string) {
	f.mu.Lock()
	var items []InstanceGroup
	for _, g := range f.groups {
		if params["account"] != "" && g.Account != params["account"] {
			continue
		}
		if params["domainid"] != "" && g.DomainID != params["domainid"] {
			continue
		}
		if params["projectid"] != "" && g.ProjectID != params["projectid"] {
			continue
		}
		items = append(items, g)
	}
	f.mu.Unlock()
	writeList(w, cmdListInstanceGroups, "instancegroup", items, params)
}

func (f *fakeCloudStack) createInstanceGroup(w http.ResponseWriter, params map[string]string) {
	g := InstanceGroup{
		ID:        uuid.NewString(),
		Name:      params["name"],
		Created:   "2015-05-03T15:05:51+0200",
		Account:   params["account"],
		DomainID:  params["domainid"],
		ProjectID: params["projectid"],
	}
	f.mu.Lock()
	f.groups = append(f.groups, g)
	f.mu.Unlock()
	writeEnvelope(w, http.StatusOK, cmdCreateInstanceGroup, map[string]any{"instancegroup": g})
}

func (f *fakeCloudStack) deleteInstanceGroup(w http.ResponseWriter, params map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, g := range f.groups {
		if g.ID == params["id"] {
			f.groups = append(f.groups[:i], f.groups[i+1:]...)
			writeEnvelope(w, http.StatusOK, cmdDeleteInstanceGroup, map[string]any{"success": "true"})
			return
		}
	}
	writeEnvelope(w, http.StatusNotAcceptable, cmdDeleteInstanceGroup, map[string]any{
		"errorcode":   431,
		"cserrorcode": 4350,
		"errortext":   "Unable to find group by id " + params["id"],
	})
}

// writeList renders one page of items the way CloudStack list commands do.
func writeList[T any](w http.ResponseWriter, command, key string, items []T, params map[string]string) {
	body := map[string]any{}
	if len(items) > 0 {
		page, _ := strconv.Atoi(params["page"])
		size, _ := strconv.Atoi(params["pagesize"])
		pageItems := items
		if page > 0 && size > 0 {
			start := (page - 1) * size
			if start > len(items) {
				start = len(items)
			}
			end := start + size
			if end > len(items) {
				end = len(items)
			}
			pageItems = items[start:end]
		}
		body["count"] = len(items)
		if len(pageItems) > 0 {
			body[key] = pageItems
		}
	}
	writeEnvelope(w, http.StatusOK, command, body)
}

func writeEnvelope(w http.ResponseWriter, status int, command string, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{strings.ToLower(command) + "response": body})
}
