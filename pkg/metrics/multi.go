package metrics

import "errors"

// Multi replica cada métrica em todos os provedores. Um provedor com falha
// não impede o envio aos demais.
type Multi []Provider

func (m Multi) Count(name string, value float64, tags []string) error {
	var errs []error
	for _, p := range m {
		errs = append(errs, p.Count(name, value, tags))
	}
	return errors.Join(errs...)
}

func (m Multi) Gauge(name string, value float64, tags []string) error {
	var errs []error
	for _, p := range m {
		errs = append(errs, p.Gauge(name, value, tags))
	}
	return errors.Join(errs...)
}

func (m Multi) Histogram(name string, value float64, tags []string) error {
	var errs []error
	for _, p := range m {
		errs = append(errs, p.Histogram(name, value, tags))
	}
	return errors.Join(errs...)
}
