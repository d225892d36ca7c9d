package tools

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// smsListArgs builds the termux-sms-list invocation. Flag order matches the
// device tool's documentation: -d, -l, -n, -o, -t. Defaults emit nothing.
func smsListArgs(limit, offset int, showDates, showNumbers bool, box string) []string {
	cmd := []string{"termux-sms-list"}
	if showDates {
		cmd = append(cmd, "-d")
	}
	if limit != 10 {
		cmd = append(cmd, "-l", strconv.Itoa(limit))
	}
	if showNumbers {
		cmd = append(cmd, "-n")
	}
	if offset != 0 {
		cmd = append(cmd, "-o", strconv.Itoa(offset))
	}
	if box != "inbox" {
		cmd = append(cmd, "-t", box)
	}
	return cmd
}

func smsListTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_sms_list",
		mcp.WithDescription("List SMS messages as JSON."),
		mcp.WithNumber("limit", mcp.DefaultNumber(10),
			mcp.Description("Number of messages to return.")),
		mcp.WithNumber("offset", mcp.DefaultNumber(0),
			mcp.Description("Offset into the message list.")),
		mcp.WithBoolean("show_dates", mcp.DefaultBool(false),
			mcp.Description("Include creation dates.")),
		mcp.WithBoolean("show_numbers", mcp.DefaultBool(false),
			mcp.Description("Include phone numbers.")),
		mcp.WithString("type", mcp.DefaultString("inbox"),
			mcp.Description("Message box: inbox, sent, draft, outbox, failed, or all.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 10)
		offset := req.GetInt("offset", 0)
		showDates := req.GetBool("show_dates", false)
		showNumbers := req.GetBool("show_numbers", false)
		box := req.GetString("type", "inbox")
		return jsonResult(r.ExecuteDevice(smsListArgs(limit, offset, showDates, showNumbers, box), ""))
	}
}

// smsSendArgs builds the termux-sms-send invocation. slot < 0 means the
// caller did not pick a SIM. The message text travels as the trailing
// positional argument when explicit, or through the stdin pipe otherwise.
func smsSendArgs(numbers string, slot int, text string) []string {
	cmd := []string{"termux-sms-send", "-n", numbers}
	if slot >= 0 {
		cmd = append(cmd, "-s", strconv.Itoa(slot))
	}
	if text != "" {
		cmd = append(cmd, text)
	}
	return cmd
}

func smsSendTool(r Runner) (mcp.Tool, server.ToolHandlerFunc) {
	t := mcp.NewTool("termux_sms_send",
		mcp.WithDescription("Send an SMS. Without the text argument the message body is read from the server's standard input."),
		mcp.WithString("numbers", mcp.Required(),
			mcp.Description("Comma separated recipient phone numbers.")),
		mcp.WithString("text", mcp.Description("Message body.")),
		mcp.WithNumber("slot", mcp.Description("SIM slot to send from.")),
	)
	return t, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		numbers, err := req.RequireString("numbers")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		slot := -1
		if hasArg(req, "slot") {
			slot = req.GetInt("slot", -1)
		}
		text := req.GetString("text", "")
		if text != "" {
			res := r.ExecuteDevice(smsSendArgs(numbers, slot, text), "")
			return statusResult(res, "SMS sent")
		}
		res := r.ExecuteDevice(smsSendArgs(numbers, slot, ""), readStdin())
		return statusResult(res, "SMS sent")
	}
}
