package disposable

// Disposable releases whatever it was handed out for.
type Disposable interface {
	Dispose()
}

type disposableImp struct {
	callback func()
	disposed bool
}

// NewDisposable wraps callback so that it runs at most once.
func NewDisposable(callback func()) Disposable {
	return &disposableImp{callback: callback}
}

func (d *disposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	if d.callback != nil {
		d.callback()
	}
}

type compositeDisposableImp struct {
	delegates []Disposable
	disposed  bool
}

// NewCompositeDisposable disposes its delegates in the given order, once.
func NewCompositeDisposable(delegates ...Disposable) Disposable {
	return &compositeDisposableImp{delegates: delegates}
}

func (d *compositeDisposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	for _, delegate := range d.delegates {
		delegate.Dispose()
	}
}
