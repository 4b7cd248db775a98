// Package ssmstore resolves configuration from AWS Systems Manager Parameter Store.
//
// An [Adapter] owns an SSM client and a private executor goroutine. Every
// [Adapter.GetParameter] call is handed to that goroutine and the caller blocks
// until the lookup finishes, so lookups against one adapter never overlap.
//
//	a, err := ssmstore.New(ctx, ssmstore.DefaultConfig(), logger)
//	if err != nil {
//	    return err // *ssmstore.InitError: no region, no credentials, ...
//	}
//	defer a.Close()
//
//	cfg, err := resolve.Resolve[AppConfig](ctx, a)
//
// [Load] does all three steps in one call.
//
// Do not call GetParameter from code that is itself running on the adapter's
// executor; the call would wait on itself.
package ssmstore
