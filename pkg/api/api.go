package api

import (
	"fmt"
	"net/http"

	"github.com/convox/stdapi"
	"github.com/openkpi/portal/pkg/structs"
	"github.com/openkpi/portal/provider"
)

type Server struct {
	*stdapi.Server
	Engine structs.Engine
}

func New() (*Server, error) {
	e, err := provider.FromEnv()
	if err != nil {
		return nil, err
	}

	return NewWithEngine(e), nil
}

func NewWithEngine(e structs.Engine) *Server {
	if err := e.Initialize(structs.EngineOptions{}); err != nil {
		panic(err)
	}

	s := &Server{
		Engine: e,
		Server: stdapi.New("portal", "portal-api"),
	}

	s.Router.HandleFunc("/check", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "ok\n")
	})

	s.Subrouter("/", func(r *stdapi.Router) {
		s.setupRoutes(*r)
	})

	return s
}

func (s *Server) engine(c *stdapi.Context) structs.Engine {
	return s.Engine
}
