// export_test.go exports private functions for white-box testing.
package watcher

var ConvertEventExported = convertEvent

func (w *Watcher) ShouldSkipExported(name string) bool {
	return w.shouldSkip(name)
}
