package ui

import (
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// showExportToast shows an in-app notification with a Reveal action for a
// freshly written export
func (ui *RootUI) showExportToast(path string) {
	fyne.CurrentApp().SendNotification(&fyne.Notification{
		Title:   "Card exported",
		Content: filepath.Base(path),
	})

	titleLabel := widget.NewLabel("Card exported")
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	pathLabel := widget.NewLabel(path)
	pathLabel.Truncation = fyne.TextTruncateEllipsis

	var toast *widget.PopUp
	hide := func() {
		if toast != nil {
			toast.Hide()
		}
	}

	revealBtn := widget.NewButton("Reveal", func() {
		hide()
		ui.onRevealFile(path)
	})
	revealBtn.Importance = widget.HighImportance

	closeBtn := widget.NewButton(IconClose, hide)
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, titleLabel, closeBtn),
		pathLabel,
		container.NewHBox(revealBtn),
	)

	toast = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toast.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	toast.Move(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))
	toast.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(hide)
	})
}
