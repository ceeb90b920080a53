package services

const verificationEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #1f2937; background-color: #f0fdf4; margin: 0; padding: 20px; }
.container { padding: 20px; max-width: 600px; margin: 20px auto; background-color: #ffffff; border: 1px solid #bbf7d0; border-radius: 8px; }
.header { font-size: 24px; font-weight: bold; color: #15803d; margin-bottom: 15px; }
.content { padding: 30px; text-align: center; }
.code { font-size: 36px; font-weight: bold; letter-spacing: 8px; color: #15803d; background-color: #f1f3f5; padding: 15px 20px; border-radius: 5px; display: inline-block; margin: 20px 0; }
.footer { margin-top: 20px; font-size: 12px; color: #6b7280; text-align: center; }
p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>%s</h1>
    </div>
    <div class="content">
      <p>%s</p>
      <div class="code">%s</div>
    </div>
    <div class="footer">
      © %d Property Hive. All rights reserved.
    </div>
  </div>
</body>
</html>`

const passwordResetEmailHTML = `<!DOCTYPE html>
<html>
<head>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #1f2937; background-color: #f0fdf4; margin: 0; padding: 20px; }
.container { padding: 20px; max-width: 600px; margin: 20px auto; background-color: #ffffff; border: 1px solid #bbf7d0; border-radius: 8px; }
.header { font-size: 24px; font-weight: bold; color: #15803d; margin-bottom: 15px; }
.content { padding: 20px; }
.button { display: inline-block; padding: 12px 24px; background-color: #15803d; color: #ffffff; border-radius: 5px; text-decoration: none; font-weight: bold; }
.footer { margin-top: 20px; font-size: 12px; color: #6b7280; text-align: center; }
p { margin-bottom: 1em; }
</style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h2>Reset your password</h2>
    </div>
    <div class="content">
      <p>Please click the link below to change your password. The link expires in one hour.</p>
      <p><a class="button" href="%s">Reset password</a></p>
      <p>If you did not request a password reset, you can safely ignore this email.</p>
    </div>
    <div class="footer">
      © %d Property Hive. All rights reserved.
    </div>
  </div>
</body>
</html>`
