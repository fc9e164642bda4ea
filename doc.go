// Package receiptpdf turns tabular purchase lines into a PDF receipt.
//
// # Pipeline
//
// Line items are loaded from CSV, assembled into an immutable [Receipt],
// rendered by a [Renderer] and written by a [Sink]:
//
//	items, err := receiptpdf.LoadItems("products.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rc := receiptpdf.NewReceipt(items, time.Now())
//	res, err := renderer.Render(ctx, rc)
//	path, err := receiptpdf.NewSink("output").Write(rc.GeneratedAt(), res)
//
// [Pipeline] runs these steps in order and optionally opens the result with
// the system viewer.
//
// # Renderers
//
// Two interchangeable strategies draw the same [Content]:
//
//   - [HTMLRenderer] fills an html/template [Template] and prints it to PDF
//     through headless Chrome ([Converter]).
//   - [DirectRenderer] assembles the document with maroto, using a TrueType
//     font found by [FindFont] or the built-in Helvetica.
//
// For HTML conversion Chrome or Chromium must be available in PATH, or use
// [WithAutoDownload]:
//
//	conv, err := receiptpdf.NewConverter(receiptpdf.WithAutoDownload())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conv.Close()
//	r := receiptpdf.NewHTMLRenderer(nil, conv)
//
// # Errors
//
// Every failure wraps one of the sentinel errors ([ErrInputNotFound],
// [ErrMalformedRow], [ErrTemplate], [ErrRender], [ErrWrite]); use errors.Is
// to classify them. [ErrViewerLaunch] is only logged by [Pipeline].
package receiptpdf
