package hcl

import (
	"github.com/vk/shapegridgo/internal/config"
	"github.com/vk/shapegridgo/internal/schema"
)

// translateSuite appends one decoded suite file to the agnostic model.
func (l *Loader) translateSuite(s *schema.SuiteConfig, model *config.Model) {
	for _, d := range s.Dims {
		model.Dims = append(model.Dims, &config.DimDecl{Name: d.Name, Batch: d.Batch})
	}
	for _, sess := range s.Sessions {
		model.Sessions = append(model.Sessions, l.translateSession(sess))
	}
	for _, bc := range s.Broadcasts {
		model.Broadcasts = append(model.Broadcasts, &config.BroadcastDecl{
			Name:    bc.Name,
			Shapes:  bc.Shapes,
			Explain: bc.Explain,
		})
	}
}

// translateSession converts an HCL session block into the agnostic model.
func (l *Loader) translateSession(s *schema.SessionBlock) *config.Session {
	sess := &config.Session{Name: s.Name, Mode: s.Mode}
	for _, c := range s.Checks {
		sess.Checks = append(sess.Checks, &config.Check{
			Name:   c.Name,
			Spec:   c.Spec,
			Actual: c.Actual,
		})
	}
	return sess
}
